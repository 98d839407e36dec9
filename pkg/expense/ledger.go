package expense

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Store persists the full record sequence.
type Store interface {
	Load() ([]Record, error)
	Save(records []Record) error
}

// Ledger holds every record for the lifetime of the process, in entry order
type Ledger struct {
	records []Record
	store   Store
	log     zerolog.Logger
}

// OpenLedger loads all records from store.
func OpenLedger(store Store, log zerolog.Logger) (*Ledger, error) {
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	ledger := &Ledger{records: records, store: store, log: log}
	log.Debug().Int("records", ledger.Len()).Msg("ledger loaded")
	return ledger, nil
}

// Append adds r to the end of the ledger and rewrites the store. When the
// write fails the record is dropped again, so memory and storage agree.
func (l *Ledger) Append(r Record) error {
	l.records = append(l.records, r)
	if err := l.store.Save(l.records); err != nil {
		l.records = l.records[:len(l.records)-1]
		l.log.Error().Err(err).Str("date", r.Date).Msg("failed to persist expense")
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	l.log.Debug().Int("records", l.Len()).Msg("ledger saved")
	return nil
}

// Records returns a copy of the records in order.
func (l *Ledger) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}
