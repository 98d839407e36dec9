package expense

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the textual form of a record date (MM-DD-YYYY). Single-digit
// months and days are accepted on input.
const DateLayout = "1-2-2006"

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrFutureDate        = errors.New("date is in the future")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyCategory     = errors.New("empty category")
	ErrEmptyDescription  = errors.New("empty description")
)

// Record represents a single expense entry
type Record struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// Equal reports whether two records hold the same values. Amounts compare
// numerically, so 20 and 20.0 are equal.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date &&
		r.Amount.Equal(o.Amount) &&
		r.Category == o.Category &&
		r.Description == o.Description
}

// Fields returns the record in column order: date, amount, category, description.
func (r Record) Fields() []string {
	return []string{r.Date, FormatAmount(r.Amount), r.Category, r.Description}
}

// RowError reports a stored row that could not be turned into a Record.
type RowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

var lower = cases.Lower(language.Und)

// Capitalize trims s and returns it with the first letter in title case and
// the rest in lower case.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(first)) + lower.String(s[size:])
}

// FormatAmount renders an amount the way the ledger file and the listing show
// it: integral values keep one decimal place, everything else drops trailing
// zeros.
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}
