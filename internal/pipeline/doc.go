// Package pipeline implements the Markdown-to-BGG conversion pipeline.
//
// This package handles the two conversion stages:
//   - Markdown preprocessing (line ending normalization, blank line compression)
//   - Markdown to BGG markup conversion via Goldmark
//
// Dialect selection (classic long forms only, or extended with short forms
// and strikethrough) is decided by the root md2bgg package and wired in here
// through the Goldmark extension and renderer configuration.
package pipeline
