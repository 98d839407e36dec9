// Package console runs the interactive expense menu and its input prompts.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/example/expense-tracker/pkg/expense"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Notice returns the message shown to the user for a validation error.
func Notice(err error) string {
	switch {
	case errors.Is(err, expense.ErrInvalidDateFormat):
		return "❌ Invalid date format! Please use MM-DD-YYYY."
	case errors.Is(err, expense.ErrFutureDate):
		return "❌ Invalid date! You cannot enter a future date."
	case errors.Is(err, expense.ErrInvalidAmount):
		return "❌ Invalid amount! Please enter a number."
	case errors.Is(err, expense.ErrEmptyCategory):
		return "❌ Category cannot be empty! Please enter a valid category."
	case errors.Is(err, expense.ErrEmptyDescription):
		return "❌ Description cannot be empty! Please enter a valid description."
	default:
		return "❌ " + err.Error()
	}
}

// Prompter reads one field at a time and keeps asking until the answer is
// valid. It stops early only when input ends or ctx is done.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	now    func() time.Time
	failed *color.Color
}

// NewPrompter creates a prompter reading lines from in and writing prompts and
// notices to out.
func NewPrompter(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	o := newOptions(opts)
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		now:    o.now,
		failed: o.style(color.FgRed),
	}
}

// Line prints prompt and returns the next input line without its line ending.
// io.EOF is returned once input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Date asks for a MM-DD-YYYY date that is not in the future.
func (p *Prompter) Date(ctx context.Context) (string, error) {
	return ask(ctx, p, "\nEnter date (MM-DD-YYYY): ", func(text string) (string, error) {
		return expense.ParseDate(text, p.now())
	})
}

// Amount asks for a number.
func (p *Prompter) Amount(ctx context.Context) (decimal.Decimal, error) {
	return ask(ctx, p, "Enter amount: ", expense.ParseAmount)
}

// Category asks for a non-empty category.
func (p *Prompter) Category(ctx context.Context) (string, error) {
	return ask(ctx, p, "Enter category: ", expense.ParseCategory)
}

// Description asks for a non-empty description.
func (p *Prompter) Description(ctx context.Context) (string, error) {
	return ask(ctx, p, "Enter description: ", expense.ParseDescription)
}

// Record asks for every field in order: date, amount, category, description.
func (p *Prompter) Record(ctx context.Context) (expense.Record, error) {
	var (
		r   expense.Record
		err error
	)
	if r.Date, err = p.Date(ctx); err != nil {
		return expense.Record{}, err
	}
	if r.Amount, err = p.Amount(ctx); err != nil {
		return expense.Record{}, err
	}
	if r.Category, err = p.Category(ctx); err != nil {
		return expense.Record{}, err
	}
	if r.Description, err = p.Description(ctx); err != nil {
		return expense.Record{}, err
	}
	return r, nil
}

func ask[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		text, err := p.Line(prompt)
		if err != nil {
			return zero, err
		}
		value, err := parse(text)
		if err == nil {
			return value, nil
		}
		p.failed.Fprintln(p.out, Notice(err))
	}
}
