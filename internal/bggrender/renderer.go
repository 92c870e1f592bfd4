package bggrender

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"

	"github.com/lebigot/md2bgg/internal/bggext"
)

// ErrUnsupportedHeadingLevel is returned for headings deeper than level 2.
// BGG markup has no heading construct; levels 1 and 2 are simulated with the
// default Huge and Large font sizes, and deeper levels have no
// representation, so the conversion aborts rather than guessing a size.
var ErrUnsupportedHeadingLevel = errors.New("unsupported heading level")

// headingSizes maps markdown heading levels to BGG font sizes.
var headingSizes = map[int]int{1: 24, 2: 18}

// shortDestRe matches short-form link destinations like "thread=2600763".
// The ID group must be a non-empty digit run.
var shortDestRe = regexp.MustCompile(`^([A-Za-z][0-9A-Za-z_-]*)=([0-9]+)$`)

// Option configures a Renderer.
type Option func(*Renderer)

// WithShortLinks enables classification of [text](type=ID) destinations as
// internal links (extended dialect).
func WithShortLinks() Option {
	return func(r *Renderer) { r.shortLinks = true }
}

// Renderer converts a Goldmark document tree to BGG markup. It implements
// renderer.Renderer so it can be installed with goldmark.WithRenderer.
type Renderer struct {
	shortLinks bool
}

// NewRenderer creates a BGG markup renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddOptions implements renderer.Renderer. Goldmark renderer options carry
// HTML concerns; none apply to bracket-tag output.
func (r *Renderer) AddOptions(...renderer.Option) {}

// Render implements renderer.Renderer.
func (r *Renderer) Render(w io.Writer, source []byte, n ast.Node) error {
	s := &render{
		source:     source,
		shortLinks: r.shortLinks,
		buf:        &strings.Builder{},
	}
	if err := s.blocks(n); err != nil {
		return err
	}
	_, err := io.WriteString(w, s.buf.String())
	return err
}

// render holds the per-call state: the output buffer and the two line
// prefixes. prefix is written at the start of the next emitted line;
// second is what prefix degrades to once a line has been emitted, giving
// hanging indents inside list items. List rendering saves and restores
// both around each item.
type render struct {
	source     []byte
	shortLinks bool
	buf        *strings.Builder
	prefix     string
	second     string
}

// capture renders f into a fresh buffer and returns the produced text,
// leaving prefix state mutations in place.
func (s *render) capture(f func() error) (string, error) {
	old := s.buf
	s.buf = &strings.Builder{}
	err := f()
	out := s.buf.String()
	s.buf = old
	return out, err
}

// blocks renders the block children of parent in document order. A block
// preceded by blank source lines is separated from its previous sibling by
// an empty output line, reconstructing the spacing the parser consumed.
func (s *render) blocks(parent ast.Node) error {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c != parent.FirstChild() && c.HasBlankPreviousLines() {
			s.buf.WriteString("\n")
		}
		if err := s.block(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *render) block(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Paragraph:
		return s.paragraph(n)
	case *ast.TextBlock:
		return s.paragraph(n)
	case *ast.Heading:
		return s.heading(n)
	case *ast.Blockquote:
		contents, err := s.capture(func() error { return s.blocks(n) })
		if err != nil {
			return err
		}
		s.buf.WriteString(Wrap("q", contents))
		return nil
	case *ast.List:
		return s.list(n)
	case *ast.FencedCodeBlock:
		s.codeBlock(n)
		return nil
	case *ast.CodeBlock:
		s.codeBlock(n)
		return nil
	case *ast.ThematicBreak:
		s.buf.WriteString(s.prefix + "---\n")
		s.prefix = s.second
		return nil
	case *ast.HTMLBlock:
		s.htmlBlock(n)
		return nil
	default:
		return s.blocks(n)
	}
}

// paragraph renders a paragraph or the bare text block of a tight list item:
// the current prefix, the inline children, a line terminator, and then the
// prefix degrades to the continuation prefix.
func (s *render) paragraph(n ast.Node) error {
	contents, err := s.capture(func() error { return s.inlines(n) })
	if err != nil {
		return err
	}
	s.buf.WriteString(s.prefix + contents + "\n")
	s.prefix = s.second
	return nil
}

func (s *render) heading(n *ast.Heading) error {
	size, ok := headingSizes[n.Level]
	if !ok {
		return fmt.Errorf("%w: %d (only levels 1 and 2 exist in BGG markup)",
			ErrUnsupportedHeadingLevel, n.Level)
	}
	contents, err := s.capture(func() error { return s.inlines(n) })
	if err != nil {
		return err
	}
	s.buf.WriteString(s.prefix + WrapParam("size", contents, strconv.Itoa(size)) + "\n")
	s.prefix = s.second
	return nil
}

// list renders ordered items as "<n>. " with a same-width space indent for
// continuation lines, and unordered items as the list's bullet plus a
// two-space indent. Prefix state is saved and restored around each item, so
// sibling items never see each other's mutations.
func (s *render) list(n *ast.List) error {
	renderItem := func(item ast.Node, marker, continuation string) error {
		oldPrefix, oldSecond := s.prefix, s.second
		s.prefix = oldPrefix + marker
		s.second = oldSecond + continuation
		err := s.blocks(item)
		s.prefix, s.second = oldPrefix, oldSecond
		return err
	}

	if n.IsOrdered() {
		num := n.Start
		if num == 0 {
			num = 1
		}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			if item != n.FirstChild() && item.HasBlankPreviousLines() {
				s.buf.WriteString("\n")
			}
			marker := strconv.Itoa(num) + ". "
			if err := renderItem(item, marker, strings.Repeat(" ", len(marker))); err != nil {
				return err
			}
			num++
		}
	} else {
		marker := string(n.Marker) + " "
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			if item != n.FirstChild() && item.HasBlankPreviousLines() {
				s.buf.WriteString("\n")
			}
			if err := renderItem(item, marker, "  "); err != nil {
				return err
			}
		}
	}
	s.prefix = s.second
	return nil
}

// codeBlock emits the literal lines wrapped in a [c] tag. BGG markup has no
// language parameter, so any fence info string is dropped.
func (s *render) codeBlock(n ast.Node) {
	s.buf.WriteString(s.prefix + "[c]\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		s.buf.Write(seg.Value(s.source))
	}
	s.buf.WriteString("[/c]\n")
	s.prefix = s.second
}

// htmlBlock passes raw HTML through unchanged; BGG markup has no equivalent
// and the reference dialect leaves it untouched. At EOF the last line segment
// carries no newline, so the block is line-terminated here like every other
// block kind.
func (s *render) htmlBlock(n *ast.HTMLBlock) {
	var raw strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw.Write(seg.Value(s.source))
	}
	if n.HasClosure() {
		raw.Write(n.ClosureLine.Value(s.source))
	}
	block := raw.String()
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	s.buf.WriteString(s.prefix + block)
	s.prefix = s.second
}

func (s *render) inlines(parent ast.Node) error {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if err := s.inline(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *render) inline(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Text:
		s.buf.Write(n.Segment.Value(s.source))
		if n.HardLineBreak() {
			s.buf.WriteString("\n")
		} else if n.SoftLineBreak() {
			s.buf.WriteString(" ")
		}
		return nil
	case *ast.String:
		s.buf.Write(n.Value)
		return nil
	case *ast.CodeSpan:
		s.codeSpan(n)
		return nil
	case *ast.Emphasis:
		contents, err := s.capture(func() error { return s.inlines(n) })
		if err != nil {
			return err
		}
		code := "i"
		if n.Level == 2 {
			code = "b"
		}
		s.buf.WriteString(Wrap(code, contents))
		return nil
	case *east.Strikethrough:
		contents, err := s.capture(func() error { return s.inlines(n) })
		if err != nil {
			return err
		}
		s.buf.WriteString(Wrap("-", contents))
		return nil
	case *ast.Link:
		return s.link(n)
	case *ast.AutoLink:
		s.autoLink(n)
		return nil
	case *ast.Image:
		return s.image(n)
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			s.buf.Write(seg.Value(s.source))
		}
		return nil
	case *bggext.InternalLink:
		// Text-omitted form: the tag wraps empty contents.
		s.buf.WriteString(WrapParam(n.LinkType, "", n.ObjectID))
		return nil
	case *bggext.InternalImage:
		s.buf.WriteString("[imageid=" + n.ImageID + sizeSuffix(n.Size) + "]")
		return nil
	case *bggext.ExternalImage:
		// The URL is deliberately NOT escaped, matching the reference
		// dialect (generic link destinations ARE escaped; the asymmetry
		// is preserved for byte compatibility).
		s.buf.WriteString(Wrap("img", n.URL))
		return nil
	case *bggext.YouTubeVideo:
		s.buf.WriteString("[youtube=" + n.VideoID + "]")
		return nil
	default:
		return s.inlines(n)
	}
}

func sizeSuffix(size string) string {
	if size == "" {
		return ""
	}
	return " " + size
}

// codeSpan renders inline code. When the literal itself starts or ends with
// a backtick the [c] tag would still work, but the reference dialect
// switches to the markdown double-backtick form to avoid delimiter
// collision, and that is reproduced here.
func (s *render) codeSpan(n *ast.CodeSpan) {
	var lit bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(s.source)
		if bytes.HasSuffix(value, []byte("\n")) {
			lit.Write(value[:len(value)-1])
			lit.WriteString(" ")
		} else {
			lit.Write(value)
		}
	}
	text := lit.String()
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		s.buf.WriteString("`` " + text + " ``")
		return
	}
	s.buf.WriteString(Wrap("c", text))
}

// link renders a bracketed link, classifying the destination: short form
// (extended dialect) and boardgamegeek.com URLs become internal link tags,
// everything else a [url=...] tag. Titles are not representable in BGG
// markup; a link carrying one is always rendered as a generic link with the
// title discarded, which is also what keeps titled BGG URLs out of the
// internal form, as in the reference dialect.
func (s *render) link(n *ast.Link) error {
	contents, err := s.capture(func() error { return s.inlines(n) })
	if err != nil {
		return err
	}
	dest := string(n.Destination)
	if len(n.Title) == 0 {
		if s.shortLinks {
			if m := shortDestRe.FindStringSubmatch(dest); m != nil {
				s.buf.WriteString(WrapParam(m[1], contents, m[2]))
				return nil
			}
		}
		if linkType, objectID, ok := bggext.ParseRef(dest); ok {
			s.buf.WriteString(WrapParam(linkType, contents, objectID))
			return nil
		}
	}
	s.buf.WriteString(WrapParam("url", contents, EscapeURL(dest)))
	return nil
}

func (s *render) autoLink(n *ast.AutoLink) {
	label := string(n.Label(s.source))
	dest := string(n.URL(s.source))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(dest, "mailto:") {
		dest = "mailto:" + dest
	}
	s.buf.WriteString(WrapParam("url", label, EscapeURL(dest)))
}

// image renders a standard markdown image back in its source form. The
// reference dialect has no rule for generic images, so they fall through to
// markdown passthrough rather than guessing an [img] rendering.
func (s *render) image(n *ast.Image) error {
	alt, err := s.capture(func() error { return s.inlines(n) })
	if err != nil {
		return err
	}
	title := ""
	if len(n.Title) > 0 {
		title = ` "` + string(n.Title) + `"`
	}
	s.buf.WriteString("![" + alt + "](" + string(n.Destination) + title + ")")
	return nil
}
