package md2bgg

import "fmt"

// Dialect selects which markdown dialect the converter accepts.
type Dialect string

// Supported dialects.
const (
	// DialectClassic recognizes only the long URL forms of the BGG
	// constructs.
	DialectClassic Dialect = "classic"

	// DialectExtended adds the short forms ([text](thread=123),
	// !(imageid=123), (youtube=ID)) and ~~strikethrough~~.
	DialectExtended Dialect = "extended"
)

// DefaultDialect is used when no dialect is specified.
const DefaultDialect = DialectExtended

// Validate checks that the dialect is a known value.
func (d Dialect) Validate() error {
	switch d {
	case DialectClassic, DialectExtended:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)",
			ErrInvalidDialect, string(d), DialectClassic, DialectExtended)
	}
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
}

// Result contains the conversion output.
type Result struct {
	BGG string // BGG forum markup
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	dialect Dialect
}

// WithDialect sets the markdown dialect the converter accepts.
// The dialect is validated by NewConverter.
func WithDialect(d Dialect) Option {
	return func(c *Converter) {
		c.cfg.dialect = d
	}
}
