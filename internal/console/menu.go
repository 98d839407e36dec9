package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/example/expense-tracker/internal/report"
	"github.com/example/expense-tracker/pkg/expense"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// State of the menu loop.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Menu is the interactive add / view / exit loop over a ledger.
type Menu struct {
	ledger   *expense.Ledger
	prompter *Prompter
	out      io.Writer
	log      zerolog.Logger

	heading *color.Color
	success *color.Color
	failed  *color.Color
}

// NewMenu creates a menu that reads choices from in and writes to out.
func NewMenu(ledger *expense.Ledger, in io.Reader, out io.Writer, opts ...Option) *Menu {
	o := newOptions(opts)
	return &Menu{
		ledger:   ledger,
		prompter: NewPrompter(in, out, opts...),
		out:      out,
		log:      o.log,
		heading:  o.style(color.Bold),
		success:  o.style(color.FgGreen),
		failed:   o.style(color.FgRed),
	}
}

// Run shows the menu until the user exits or input ends. It returns ctx's
// error if ctx is cancelled first.
func (m *Menu) Run(ctx context.Context) error {
	m.heading.Fprintln(m.out, "💰 Personal Finance Tracker")

	state := Running
	for state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		state, err = m.Step(ctx)
		if errors.Is(err, io.EOF) {
			m.log.Debug().Msg("input closed")
			m.farewell()
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Step shows the choices once, handles one answer and returns the next state.
func (m *Menu) Step(ctx context.Context) (State, error) {
	fmt.Fprintln(m.out, "1. Add an expense")
	fmt.Fprintln(m.out, "2. View expenses")
	fmt.Fprintln(m.out, "3. Exit")

	choice, err := m.prompter.Line("Choose an option (1-3): ")
	if err != nil {
		return Running, err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return Running, m.addExpense(ctx)
	case "2":
		return Running, report.WriteView(m.out, m.ledger.Records())
	case "3":
		m.farewell()
		return Terminated, nil
	default:
		m.failed.Fprint(m.out, "\n❌ Invalid choice! Please select 1, 2, or 3.\n\n")
		return Running, nil
	}
}

func (m *Menu) addExpense(ctx context.Context) error {
	r, err := m.prompter.Record(ctx)
	if err != nil {
		return err
	}
	if err := m.ledger.Append(r); err != nil {
		m.failed.Fprintf(m.out, "❌ Could not save expense: %v\n", err)
		return nil
	}
	m.log.Info().Str("date", r.Date).Str("category", r.Category).Msg("expense added")
	m.success.Fprint(m.out, "\n✅ Expense added successfully!\n\n")
	return nil
}

func (m *Menu) farewell() {
	fmt.Fprintln(m.out, "\n👋 Goodbye!")
}
