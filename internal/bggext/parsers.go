package bggext

import (
	"regexp"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Inline parser priorities. Goldmark consults lower values first; its
// built-in parsers run at CodeSpan 100, Link 200, AutoLink 300, RawHTML 400,
// Emphasis 500. The custom recognizers sit between code spans and the
// standard link parser, ordered so that at a shared position the more
// specific construct always wins: internal image before external image on
// "!", and the short YouTube form before the internal link forms on "(".
const (
	priorityInternalImage = 150
	priorityYouTubeShort  = 151
	priorityInternalLink  = 152
	priorityExternalImage = 160
	priorityYouTubeLong   = 161
)

// Patterns are anchored at the scan position and confined to a single line;
// \S keeps every capture from crossing whitespace, so a construct can never
// bleed onto the next parenthesized construct on the same line.
var (
	// Long form: the lazy \S*? admits any boardgamegeek host variant
	// (www.boardgamegeek.com, ...); the image ID is the mandatory digit
	// group, with an optional space-separated size token before the ")".
	internalImageLongRe = regexp.MustCompile(
		`^!\(https?://\S*?boardgamegeek\.com\S*?/image/(?P<id>[0-9]+)\S*?(?: +(?P<size>\S+))?\)`)

	// Short form (extended dialect): !(imageid=123 small)
	internalImageShortRe = regexp.MustCompile(
		`^!\(imageid=(?P<id>[0-9]+)(?: +(?P<size>\S+))?\)`)

	// Text-omitted internal link, long form: the destination is everything
	// up to the closing ")"; ParseRef decides whether it is a BGG reference.
	internalLinkLongRe = regexp.MustCompile(`^\((?P<dest>https?://[^)\s]+)\)`)

	// Text-omitted internal link, short form (extended dialect): (thread=123)
	internalLinkShortRe = regexp.MustCompile(
		`^\((?P<type>[A-Za-z][0-9A-Za-z_-]*)=(?P<id>[0-9]+)\)`)

	externalImageRe = regexp.MustCompile(`^!\((?P<url>\S*?)\)`)

	// The lazy youtu matches both youtube.com and youtu.be hosts.
	youTubeLongRe = regexp.MustCompile(
		`^\(https?://\S*?youtu\S*?/watch\?v=(?P<id>\S+?)\)`)

	youTubeShortRe = regexp.MustCompile(`^\(youtube=(?P<id>\S+?)\)`)

	// Host check and type/ID pair extraction for ParseRef. The pair regexp
	// requires the segment to start with a letter and the ID to be a
	// non-empty digit run, so numeric path segments alone never qualify.
	bggHostRe   = regexp.MustCompile(`^https?://\S*?boardgamegeek\.com`)
	bggTypeIDRe = regexp.MustCompile(`/([A-Za-z][^/\s]*)/([0-9]+)`)
)

// ParseRef classifies a link destination as a BGG object reference.
//
// BGG URLs routinely carry several /segment/number pairs (thread ID, article
// ID); only the last pair is the semantically meaningful one, so the scan is
// greedy up to the final /type/id and ignores any trailer after the digits
// (fragments like #36994502, extra path). Returns ok=false when dest is not
// a boardgamegeek.com URL or carries no type/ID pair.
func ParseRef(dest string) (linkType, objectID string, ok bool) {
	loc := bggHostRe.FindStringIndex(dest)
	if loc == nil {
		return "", "", false
	}
	pairs := bggTypeIDRe.FindAllStringSubmatch(dest[loc[1]:], -1)
	if len(pairs) == 0 {
		return "", "", false
	}
	last := pairs[len(pairs)-1]
	return last[1], last[2], true
}

// match applies an anchored pattern to the rest of the current line and, on
// success, consumes the matched bytes and returns the named captures.
func match(re *regexp.Regexp, block text.Reader) map[string]string {
	line, _ := block.PeekLine()
	m := re.FindSubmatch(line)
	if m == nil {
		return nil
	}
	captures := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && m[i] != nil {
			captures[name] = string(m[i])
		}
	}
	block.Advance(len(m[0]))
	return captures
}

// internalImageParser recognizes BGG-hosted images. It runs before the
// external image parser so that a boardgamegeek URL maps to [imageid=...]
// rather than [img]...[/img], and before the link parsers so that "!(" is
// never read as "!" followed by an internal link.
type internalImageParser struct {
	extended bool
}

// NewInternalImageParser creates an inline parser for internal images.
// The short !(imageid=...) form is recognized only when extended is true.
func NewInternalImageParser(extended bool) parser.InlineParser {
	return &internalImageParser{extended: extended}
}

func (p *internalImageParser) Trigger() []byte { return []byte{'!'} }

func (p *internalImageParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if c := match(internalImageLongRe, block); c != nil {
		return NewInternalImage(c["id"], c["size"])
	}
	if p.extended {
		if c := match(internalImageShortRe, block); c != nil {
			return NewInternalImage(c["id"], c["size"])
		}
	}
	return nil
}

// internalLinkParser recognizes text-omitted internal links. Bracketed forms
// are handled by Goldmark's standard link parser plus render-time
// classification through ParseRef.
type internalLinkParser struct {
	extended bool
}

// NewInternalLinkParser creates an inline parser for text-omitted internal
// links. The short (type=ID) form is recognized only when extended is true.
func NewInternalLinkParser(extended bool) parser.InlineParser {
	return &internalLinkParser{extended: extended}
}

func (p *internalLinkParser) Trigger() []byte { return []byte{'('} }

func (p *internalLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if m := internalLinkLongRe.FindSubmatch(line); m != nil {
		linkType, objectID, ok := ParseRef(string(m[internalLinkLongRe.SubexpIndex("dest")]))
		if !ok {
			// Not a BGG reference: leave the parentheses to the
			// YouTube parser or to plain text.
			return nil
		}
		block.Advance(len(m[0]))
		return NewInternalLink(linkType, objectID)
	}
	if p.extended {
		if c := match(internalLinkShortRe, block); c != nil {
			return NewInternalLink(c["type"], c["id"])
		}
	}
	return nil
}

// externalImageParser recognizes !(URL) for non-BGG images. The URL is kept
// verbatim, matching the reference dialect.
type externalImageParser struct{}

// NewExternalImageParser creates an inline parser for external images.
func NewExternalImageParser() parser.InlineParser {
	return &externalImageParser{}
}

func (p *externalImageParser) Trigger() []byte { return []byte{'!'} }

func (p *externalImageParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if c := match(externalImageRe, block); c != nil {
		return NewExternalImage(c["url"])
	}
	return nil
}

// youTubeParser recognizes YouTube videos in the full URL form and, in the
// extended dialect, the short (youtube=ID) form. The short form is
// registered at a higher priority than the internal link parsers so that a
// numeric (youtube=123) is never read as a link of type "youtube".
type youTubeParser struct {
	re *regexp.Regexp
}

// NewYouTubeLongParser creates an inline parser for (https://...youtu.../watch?v=ID).
func NewYouTubeLongParser() parser.InlineParser {
	return &youTubeParser{re: youTubeLongRe}
}

// NewYouTubeShortParser creates an inline parser for (youtube=ID).
func NewYouTubeShortParser() parser.InlineParser {
	return &youTubeParser{re: youTubeShortRe}
}

func (p *youTubeParser) Trigger() []byte { return []byte{'('} }

func (p *youTubeParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if c := match(p.re, block); c != nil {
		return NewYouTubeVideo(c["id"])
	}
	return nil
}
