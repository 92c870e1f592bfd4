// Package md2bgg converts Markdown documents to BoardGameGeek forum markup.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2bgg.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2bgg.Input{
//	    Markdown: "# Hello\n\nSee [Torres](https://boardgamegeek.com/boardgame/88).",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.BGG)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line compression)
//  2. Markdown to BGG markup conversion via Goldmark with custom inline
//     syntax for BGG links, images, and YouTube videos
//
// # Dialects
//
// Two input dialects are supported:
//
//   - DialectExtended (default): full syntax, including the short forms
//     [text](thread=123), !(imageid=123 small), (youtube=ID), and
//     ~~strikethrough~~.
//   - DialectClassic: long URL forms only; the short forms and
//     strikethrough stay plain text.
//
// Select a dialect with an option:
//
//	conv, err := md2bgg.NewConverter(md2bgg.WithDialect(md2bgg.DialectClassic))
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to reuse converters across
// goroutines:
//
//	pool, err := md2bgg.NewConverterPool(4)
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
package md2bgg
