// Package bggrender renders a Goldmark document tree as boardgamegeek.com
// bracket-tag markup.
//
// The renderer replaces Goldmark's HTML renderer wholesale: it walks the
// tree depth-first with an explicit recursion, because most BGG constructs
// need their children rendered to a string before wrapping, and list
// rendering threads a pair of line-prefix strings (current prefix and
// continuation prefix) through the descent. Both prefixes are scoped to one
// Render call; a renderer instance is safe for concurrent use.
package bggrender
