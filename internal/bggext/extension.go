package bggext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

// Extension registers the BGG inline parsers on a Goldmark instance.
// It contributes parsers only; rendering is owned by the bggrender package.
type Extension struct {
	extended bool
}

// New creates the BGG extension. When extended is true, the short-form
// syntaxes and ~~strikethrough~~ are enabled in addition to the long forms.
func New(extended bool) *Extension {
	return &Extension{extended: extended}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	ps := []util.PrioritizedValue{
		util.Prioritized(NewInternalImageParser(e.extended), priorityInternalImage),
	}
	if e.extended {
		ps = append(ps, util.Prioritized(NewYouTubeShortParser(), priorityYouTubeShort))
	}
	ps = append(ps,
		util.Prioritized(NewInternalLinkParser(e.extended), priorityInternalLink),
		util.Prioritized(NewExternalImageParser(), priorityExternalImage),
		util.Prioritized(NewYouTubeLongParser(), priorityYouTubeLong),
	)
	if e.extended {
		// Goldmark's GFM strikethrough parser handles the delimiter
		// matching and nested inline parsing; 500 is its upstream
		// priority, alongside the emphasis parser.
		ps = append(ps, util.Prioritized(extension.NewStrikethroughParser(), 500))
	}
	m.Parser().AddOptions(parser.WithInlineParsers(ps...))
}
