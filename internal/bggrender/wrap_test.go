package bggrender

import "testing"

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		contents string
		expected string
	}{
		{
			name:     "bold",
			code:     "b",
			contents: "hello",
			expected: "[b]hello[/b]",
		},
		{
			name:     "empty contents",
			code:     "q",
			contents: "",
			expected: "[q][/q]",
		},
		{
			name:     "contents with newline",
			code:     "q",
			contents: "line1\nline2\n",
			expected: "[q]line1\nline2\n[/q]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Wrap(tt.code, tt.contents)
			if got != tt.expected {
				t.Errorf("Wrap() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWrapParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		contents string
		param    string
		expected string
	}{
		{
			name:     "url",
			code:     "url",
			contents: "BGG",
			param:    "https://boardgamegeek.com",
			expected: "[url=https://boardgamegeek.com]BGG[/url]",
		},
		{
			name:     "size",
			code:     "size",
			contents: "Title",
			param:    "24",
			expected: "[size=24]Title[/size]",
		},
		{
			name:     "empty contents",
			code:     "thread",
			contents: "",
			param:    "123",
			expected: "[thread=123][/thread]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := WrapParam(tt.code, tt.contents, tt.param)
			if got != tt.expected {
				t.Errorf("WrapParam() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEscapeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain URL unchanged",
			input:    "https://example.com/path?q=1",
			expected: "https://example.com/path?q=1",
		},
		{
			name:     "closing bracket escaped",
			input:    "https://example.com/a]b",
			expected: "https://example.com/a%5Db",
		},
		{
			name:     "space escaped",
			input:    "https://example.com/a b",
			expected: "https://example.com/a%20b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EscapeURL(tt.input)
			if got != tt.expected {
				t.Errorf("EscapeURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}
