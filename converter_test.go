package md2bgg

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewConverter(t *testing.T) {
	t.Parallel()

	t.Run("defaults to extended dialect", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter()
		if err != nil {
			t.Fatalf("NewConverter() error = %v", err)
		}
		if conv.Dialect() != DialectExtended {
			t.Errorf("Dialect() = %q, want %q", conv.Dialect(), DialectExtended)
		}
	})

	t.Run("accepts classic dialect", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(WithDialect(DialectClassic))
		if err != nil {
			t.Fatalf("NewConverter() error = %v", err)
		}
		if conv.Dialect() != DialectClassic {
			t.Errorf("Dialect() = %q, want %q", conv.Dialect(), DialectClassic)
		}
	})

	t.Run("rejects unknown dialect", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(WithDialect("gfm"))
		if !errors.Is(err, ErrInvalidDialect) {
			t.Errorf("NewConverter() error = %v, want ErrInvalidDialect", err)
		}
	})
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dialect  Dialect
		input    string
		expected string
	}{
		{
			name:     "plain paragraph",
			dialect:  DialectExtended,
			input:    "Hello world",
			expected: "Hello world\n",
		},
		{
			name:     "heading and internal link",
			dialect:  DialectExtended,
			input:    "# Report\n\nWe played [Torres](https://boardgamegeek.com/boardgame/88).",
			expected: "[size=24]Report[/size]\n\nWe played [boardgame=88]Torres[/boardgame].\n",
		},
		{
			name:     "short form in extended dialect",
			dialect:  DialectExtended,
			input:    "[a thread](thread=123)",
			expected: "[thread=123]a thread[/thread]\n",
		},
		{
			name:     "short form stays generic in classic dialect",
			dialect:  DialectClassic,
			input:    "[a thread](thread=123)",
			expected: "[url=thread=123]a thread[/url]\n",
		},
		{
			name:     "CRLF input normalized before parsing",
			dialect:  DialectExtended,
			input:    "first\r\n\r\nsecond",
			expected: "first\n\nsecond\n",
		},
		{
			name:     "excess blank lines compressed",
			dialect:  DialectExtended,
			input:    "first\n\n\n\n\nsecond",
			expected: "first\n\nsecond\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(WithDialect(tt.dialect))
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			result, err := conv.Convert(context.Background(), Input{Markdown: tt.input})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if result.BGG != tt.expected {
				t.Errorf("Convert():\ngot:  %q\nwant: %q", result.BGG, tt.expected)
			}
		})
	}
}

func TestConverter_Convert_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	_, err = conv.Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("Convert() error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestConverter_Convert_UnsupportedHeading(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	_, err = conv.Convert(context.Background(), Input{Markdown: "### deep heading"})
	if !errors.Is(err, ErrUnsupportedHeadingLevel) {
		t.Errorf("Convert() error = %v, want ErrUnsupportedHeadingLevel", err)
	}
	if err == nil || !strings.Contains(err.Error(), "3") {
		t.Errorf("Convert() error = %v, want heading level in message", err)
	}
}

func TestConverter_Convert_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	_, err = conv.Convert(ctx, Input{Markdown: "# Title"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConverter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	const goroutines = 8
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			result, err := conv.Convert(context.Background(), Input{Markdown: "**bold**"})
			if err == nil && result.BGG != "[b]bold[/b]\n" {
				err = errors.New("unexpected output: " + result.BGG)
			}
			errs <- err
		}()
	}
	for i := 0; i < goroutines; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent Convert() error = %v", err)
		}
	}
}
