package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseDate checks that text is a MM-DD-YYYY date no later than now. The
// original text is returned unchanged.
func ParseDate(text string, now time.Time) (string, error) {
	date, err := time.ParseInLocation(DateLayout, text, now.Location())
	if err != nil {
		return "", ErrInvalidDateFormat
	}
	if date.After(now) {
		return "", ErrFutureDate
	}
	return text, nil
}

// ParseAmount parses a real number, ignoring surrounding whitespace.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// ParseCategory returns the capitalized category, or ErrEmptyCategory when
// nothing is left after trimming.
func ParseCategory(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCategory
	}
	return Capitalize(text), nil
}

// ParseDescription returns the capitalized description, or ErrEmptyDescription
// when nothing is left after trimming.
func ParseDescription(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDescription
	}
	return Capitalize(text), nil
}

// NewRecord validates all four fields at once. The first failing field's error
// is returned.
func NewRecord(date, amount, category, description string, now time.Time) (Record, error) {
	var (
		r   Record
		err error
	)
	if r.Date, err = ParseDate(date, now); err != nil {
		return Record{}, err
	}
	if r.Amount, err = ParseAmount(amount); err != nil {
		return Record{}, err
	}
	if r.Category, err = ParseCategory(category); err != nil {
		return Record{}, err
	}
	if r.Description, err = ParseDescription(description); err != nil {
		return Record{}, err
	}
	return r, nil
}
