package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "past date", input: "01-01-2024"},
		{name: "today", input: "06-15-2024"},
		{name: "single digit month and day", input: "1-5-2024"},
		{name: "tomorrow", input: "06-16-2024", wantErr: ErrFutureDate},
		{name: "next year", input: "06-15-2025", wantErr: ErrFutureDate},
		{name: "iso layout", input: "2024-01-01", wantErr: ErrInvalidDateFormat},
		{name: "month out of range", input: "13-01-2024", wantErr: ErrInvalidDateFormat},
		{name: "day out of range", input: "02-30-2024", wantErr: ErrInvalidDateFormat},
		{name: "empty", input: "", wantErr: ErrInvalidDateFormat},
		{name: "text", input: "yesterday", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestParseDate_RealClock(t *testing.T) {
	now := time.Now()

	_, err := ParseDate(now.Format("01-02-2006"), now)
	assert.NoError(t, err)

	_, err = ParseDate(now.AddDate(1, 0, 0).Format("01-02-2006"), now)
	assert.ErrorIs(t, err, ErrFutureDate)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "12.5", want: "12.5"},
		{input: " 20 ", want: "20"},
		{input: "-4.25", want: "-4.25"},
		{input: "0", want: "0"},
		{input: "1e2", want: "100"},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "12,50", wantErr: true},
		{input: "1_000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("  groceries ")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got)

	_, err = ParseCategory(" \t ")
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestParseDescription(t *testing.T) {
	got, err := ParseDescription("MILK and eggs")
	require.NoError(t, err)
	assert.Equal(t, "Milk and eggs", got)

	_, err = ParseDescription("")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)

	r, err := NewRecord("01-01-2024", "20", "groceries", "milk", now)
	require.NoError(t, err)
	assert.Equal(t, "01-01-2024", r.Date)
	assert.Equal(t, "20.0", FormatAmount(r.Amount))
	assert.Equal(t, "Groceries", r.Category)
	assert.Equal(t, "Milk", r.Description)

	_, err = NewRecord("01-01-2024", "abc", "", "", now)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewRecord("01-01-2024", "1", "food", " ", now)
	assert.ErrorIs(t, err, ErrEmptyDescription)
}
