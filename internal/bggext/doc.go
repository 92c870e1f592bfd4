// Package bggext implements the boardgamegeek.com inline constructs as a
// Goldmark extension.
//
// The extension registers inline parsers for the custom BGG forms ahead of
// Goldmark's built-in link parser, so that at any scan position the most
// specific construct wins:
//   - internal images: !(https://boardgamegeek.com/image/123 small) and, in
//     the extended dialect, !(imageid=123 small)
//   - internal links with the text omitted: (https://boardgamegeek.com/thread/123)
//     and, in the extended dialect, (thread=123)
//   - external images: !(https://example.com/pic.png)
//   - YouTube videos: (https://www.youtube.com/watch?v=ID) and, in the
//     extended dialect, (youtube=ID)
//   - strikethrough ~~text~~ (extended dialect, via Goldmark's GFM parser)
//
// Bracketed internal links ([text](https://boardgamegeek.com/...) and
// [text](thread=123)) are deliberately left to Goldmark's standard link
// parser: the link text then gets full recursive inline parsing, and the
// renderer classifies the destination. ParseRef holds the shared
// classification rule.
package bggext
