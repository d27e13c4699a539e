package sortedlist

import (
	"fmt"
	"log/slog"
)

// TextOrder selects how text elements are compared.
type TextOrder uint8

const (
	// TextOrderLexical compares strings byte-wise.
	TextOrderLexical TextOrder = iota
	// TextOrderNatural compares digit runs by numeric value ("file2" < "file10").
	TextOrderNatural
)

func (o TextOrder) String() string {
	switch o {
	case TextOrderLexical:
		return "lexical"
	case TextOrderNatural:
		return "natural"
	default:
		return fmt.Sprintf("TextOrder(%d)", uint8(o))
	}
}

// ParseTextOrder maps "lexical" or "natural" onto a TextOrder.
func ParseTextOrder(s string) (TextOrder, error) {
	switch s {
	case "", "lexical":
		return TextOrderLexical, nil
	case "natural":
		return TextOrderNatural, nil
	default:
		return TextOrderLexical, fmt.Errorf("%w: unknown text order %q", ErrInvalidConfiguration, s)
	}
}

const defaultName = "default"

type options struct {
	kind      Kind
	kindSet   bool
	textOrder TextOrder
	logger    *slog.Logger
	metrics   *Metrics
	name      string
}

// Option configures a List created by New.
type Option func(*options)

// WithKind fixes the element kind up front instead of inferring it from the
// first insertion. Only KindIntegral and KindText are accepted.
func WithKind(kind Kind) Option {
	return func(o *options) {
		o.kind = kind
		o.kindSet = true
	}
}

// WithTextOrder selects the ordering used for text elements.
func WithTextOrder(order TextOrder) Option {
	return func(o *options) {
		o.textOrder = order
	}
}

// WithLogger sets the logger used for debug diagnostics. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics records list activity into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithName labels the list in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

func (o *options) validate() error {
	if o.kindSet && !o.kind.Valid() {
		return fmt.Errorf("%w: declared kind %s is neither integral nor text", ErrInvalidConfiguration, o.kind)
	}

	if o.textOrder != TextOrderLexical && o.textOrder != TextOrderNatural {
		return fmt.Errorf("%w: unknown text order %s", ErrInvalidConfiguration, o.textOrder)
	}

	return nil
}
