package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/example/expense-tracker/pkg/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader(input), out,
		WithClock(func() time.Time { return fixedNow }),
		WithColor(false),
	)
	return p, out
}

func TestNotice(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{expense.ErrInvalidDateFormat, "❌ Invalid date format! Please use MM-DD-YYYY."},
		{expense.ErrFutureDate, "❌ Invalid date! You cannot enter a future date."},
		{expense.ErrInvalidAmount, "❌ Invalid amount! Please enter a number."},
		{expense.ErrEmptyCategory, "❌ Category cannot be empty! Please enter a valid category."},
		{expense.ErrEmptyDescription, "❌ Description cannot be empty! Please enter a valid description."},
		{errors.New("disk full"), "❌ disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Notice(tt.err))
		})
	}
}

func TestPrompter_Line(t *testing.T) {
	p, out := newTestPrompter("first\r\nsecond")

	line, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = p.Line("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestPrompter_Date_RetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("2024/01/01\n06-15-2025\n06-15-2024\n")

	date, err := p.Date(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "06-15-2024", date)

	assert.Equal(t,
		"\nEnter date (MM-DD-YYYY): ❌ Invalid date format! Please use MM-DD-YYYY.\n"+
			"\nEnter date (MM-DD-YYYY): ❌ Invalid date! You cannot enter a future date.\n"+
			"\nEnter date (MM-DD-YYYY): ",
		out.String())
}

func TestPrompter_Amount_RetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("abc\n\n12.5\n")

	amount, err := p.Amount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12.5", amount.String())
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid amount!"))
}

func TestPrompter_Category_RetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("   \n  groceries  \n")

	category, err := p.Category(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Groceries", category)
	assert.Contains(t, out.String(), "Category cannot be empty!")
}

func TestPrompter_Description_RetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("\nMILK\n")

	description, err := p.Description(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Milk", description)
	assert.Contains(t, out.String(), "Description cannot be empty!")
}

func TestPrompter_Record(t *testing.T) {
	p, _ := newTestPrompter("01-01-2024\n20\ngroceries\nmilk\n")

	r, err := p.Record(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "01-01-2024", r.Date)
	assert.Equal(t, "20.0", expense.FormatAmount(r.Amount))
	assert.Equal(t, "Groceries", r.Category)
	assert.Equal(t, "Milk", r.Description)
}

func TestPrompter_Record_InputEnds(t *testing.T) {
	p, _ := newTestPrompter("01-01-2024\nabc\n")

	_, err := p.Record(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_CancelledContext(t *testing.T) {
	p, _ := newTestPrompter("01-01-2024\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Date(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
