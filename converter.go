package md2bgg

import (
	"context"
	"fmt"

	"github.com/lebigot/md2bgg/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.BGGConverter         = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the markdown-to-BGG conversion pipeline.
// Create with NewConverter() and use Convert() for conversion.
// A Converter is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.MarkdownPreprocessor
	bggConverter pipeline.BGGConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithDialect).
// Returns error if the configured dialect is unknown.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{dialect: DefaultDialect},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.dialect.Validate(); err != nil {
		return nil, err
	}

	c.bggConverter = pipeline.NewGoldmarkConverter(c.cfg.dialect == DialectExtended)

	return c, nil
}

// Dialect returns the dialect the converter was configured with.
func (c *Converter) Dialect() Dialect {
	return c.cfg.dialect
}

// Convert runs the full pipeline and returns the result containing BGG markup.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to BGG markup
	bggContent, err := c.bggConverter.ToBGG(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to BGG markup: %w", err)
	}

	return &Result{BGG: bggContent}, nil
}
