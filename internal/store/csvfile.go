// Package store persists expense records to a flat comma-delimited file.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/expense-tracker/pkg/expense"
	"github.com/rs/zerolog"
)

const fieldCount = 4

// CSVFile stores records as date,amount,category,description rows.
type CSVFile struct {
	path            string
	skipInvalidRows bool
	log             zerolog.Logger
}

// Option configures a CSVFile.
type Option func(*CSVFile)

// WithSkipInvalidRows makes Load drop rows whose amount does not parse instead
// of failing.
func WithSkipInvalidRows(skip bool) Option {
	return func(f *CSVFile) {
		f.skipInvalidRows = skip
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(f *CSVFile) {
		f.log = log
	}
}

// NewCSVFile creates a store backed by the file at path.
func NewCSVFile(path string, opts ...Option) *CSVFile {
	f := &CSVFile{path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the backing file path.
func (f *CSVFile) Path() string {
	return f.path
}

// Load reads every record from the file. A missing file yields no records.
// A leading header row is skipped and rows without exactly four fields are
// ignored.
func (f *CSVFile) Load() ([]expense.Record, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.log.Debug().Str("path", f.path).Msg("ledger file not found, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer file.Close()

	return f.read(file)
}

func (f *CSVFile) read(r io.Reader) ([]expense.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []expense.Record
	for first := true; ; first = false {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
		}
		line, _ := reader.FieldPos(0)

		if first && len(row) > 0 && strings.EqualFold(row[0], "date") {
			continue
		}
		if len(row) != fieldCount {
			f.log.Debug().Int("line", line).Int("fields", len(row)).Msg("skipping malformed row")
			continue
		}

		amount, err := expense.ParseAmount(row[1])
		if err != nil {
			rowErr := &expense.RowError{Line: line, Field: "amount", Value: row[1], Err: err}
			if !f.skipInvalidRows {
				return nil, rowErr
			}
			f.log.Warn().Err(rowErr).Msg("skipping row with invalid amount")
			continue
		}

		records = append(records, expense.Record{
			Date:        row[0],
			Amount:      amount,
			Category:    expense.Capitalize(row[2]),
			Description: expense.Capitalize(row[3]),
		})
	}

	f.log.Debug().Str("path", f.path).Int("records", len(records)).Msg("ledger file read")
	return records, nil
}

// Save rewrites the whole file from records. No header row is written.
func (f *CSVFile) Save(records []expense.Record) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", tmp.Name(), err)
	}

	writer := csv.NewWriter(tmp)
	for _, r := range records {
		if err := writer.Write(r.Fields()); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}

	f.log.Debug().Str("path", f.path).Int("records", len(records)).Msg("ledger file written")
	return nil
}
