package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/lebigot/md2bgg/internal/bggext"
	"github.com/lebigot/md2bgg/internal/bggrender"
)

// ErrConversion indicates BGG markup conversion failed.
var ErrConversion = errors.New("BGG conversion failed")

// BGGConverter abstracts Markdown to BGG markup conversion.
type BGGConverter interface {
	ToBGG(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to BGG markup using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter. With extended true, the
// short-form syntaxes and ~~strikethrough~~ are recognized in addition to
// the long forms.
func NewGoldmarkConverter(extended bool) *GoldmarkConverter {
	var renderOpts []bggrender.Option
	if extended {
		renderOpts = append(renderOpts, bggrender.WithShortLinks())
	}
	md := goldmark.New(
		goldmark.WithExtensions(bggext.New(extended)),
		goldmark.WithRenderer(bggrender.NewRenderer(renderOpts...)),
	)
	return &GoldmarkConverter{md: md}
}

// ToBGG converts Markdown content to BGG markup.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToBGG(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		bgg string
		err error
	}

	done := make(chan result, 1)

	go func() {
		var sb strings.Builder
		if err := c.md.Convert([]byte(content), &sb); err != nil {
			if errors.Is(err, bggrender.ErrUnsupportedHeadingLevel) {
				// Keep the sentinel reachable for callers that
				// want to report the heading level precisely.
				done <- result{err: fmt.Errorf("%w: %w", ErrConversion, err)}
				return
			}
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		done <- result{bgg: sb.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.bgg, r.err
	}
}
