package console

import (
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Option configures a Prompter or Menu.
type Option func(*options)

type options struct {
	now    func() time.Time
	colors bool
	log    zerolog.Logger
}

// WithClock sets the clock used to reject future dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithColor enables or disables colored notices.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.colors = enabled
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, colors: true, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !o.colors {
		c.DisableColor()
	}
	return c
}
