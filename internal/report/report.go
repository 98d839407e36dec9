// Package report renders the expense ledger as a listing table and as
// per-category totals.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/example/expense-tracker/pkg/expense"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const separator = " | "

var headers = []string{"Date", "Amount", "Category", "Description"}

// Output formats accepted by WriteSummaryAs.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// CategoryTotal is the sum of all amounts recorded under one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// WriteListing prints every record as a bordered table, or an empty notice
// when there are none.
func WriteListing(w io.Writer, records []expense.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprint(w, "\n📭 No expenses found!\n\n")
		return err
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Date,
			expense.FormatAmount(r.Amount),
			expense.Capitalize(r.Category),
			expense.Capitalize(r.Description),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	total := len(separator) * (len(headers) - 1)
	for _, width := range widths {
		total += width
	}
	rule := strings.Repeat("-", total)

	var b strings.Builder
	b.WriteString("\n📊 All Expenses:\n")
	b.WriteString(rule + "\n")
	b.WriteString(formatRow(headers, widths) + "\n")
	b.WriteString(rule + "\n")
	for _, row := range rows {
		b.WriteString(formatRow(row, widths) + "\n")
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.Join(padded, separator)
}

// Summarize sums amounts per capitalized category, in the order each category
// first appears.
func Summarize(records []expense.Record) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[string]int)
	for _, r := range records {
		category := expense.Capitalize(r.Category)
		i, ok := index[category]
		if !ok {
			i = len(totals)
			index[category] = i
			totals = append(totals, CategoryTotal{Category: category})
		}
		totals[i].Total = totals[i].Total.Add(r.Amount)
	}
	return totals
}

// WriteSummary prints one "<category>: $<total>" line per category.
func WriteSummary(w io.Writer, totals []CategoryTotal) error {
	var b strings.Builder
	b.WriteString("\n📊 Spending by Category:\n\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "%s: $%s\n", t.Category, t.Total.StringFixed(2))
	}
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteView prints the listing followed by the category summary, the way the
// interactive view shows them.
func WriteView(w io.Writer, records []expense.Record) error {
	if err := WriteListing(w, records); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return WriteSummary(w, Summarize(records))
}

type summaryEntry struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

// WriteSummaryAs prints totals in the given format: text, json or yaml.
func WriteSummaryAs(w io.Writer, totals []CategoryTotal, format string) error {
	entries := make([]summaryEntry, len(totals))
	for i, t := range totals {
		entries[i] = summaryEntry{Category: t.Category, Total: t.Total.StringFixed(2)}
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		return WriteSummary(w, totals)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode summary as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode summary as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}
