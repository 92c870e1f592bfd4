package bggext

import "github.com/yuin/goldmark/ast"

// Node kinds for the custom BGG inline constructs.
var (
	KindInternalLink  = ast.NewNodeKind("BGGInternalLink")
	KindInternalImage = ast.NewNodeKind("BGGInternalImage")
	KindExternalImage = ast.NewNodeKind("BGGExternalImage")
	KindYouTubeVideo  = ast.NewNodeKind("BGGYouTubeVideo")
)

// InternalLink is a link to a BGG object with the link text omitted, e.g.
// (https://boardgamegeek.com/thread/2600763) or the short form (thread=2600763).
// Bracketed forms with link text are regular ast.Link nodes and are
// classified at render time.
type InternalLink struct {
	ast.BaseInline
	LinkType string // tag name, e.g. "thread", "article", "geeklist"
	ObjectID string // numeric BGG object ID, never empty
}

// NewInternalLink creates an InternalLink node.
func NewInternalLink(linkType, objectID string) *InternalLink {
	return &InternalLink{LinkType: linkType, ObjectID: objectID}
}

// Kind implements ast.Node.
func (n *InternalLink) Kind() ast.NodeKind { return KindInternalLink }

// Dump implements ast.Node.
func (n *InternalLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"LinkType": n.LinkType,
		"ObjectID": n.ObjectID,
	}, nil)
}

// InternalImage is an image hosted on BGG, e.g.
// !(https://boardgamegeek.com/image/2355823/clockwork-wars small) or the
// short form !(imageid=2355823 small). The size token is optional.
type InternalImage struct {
	ast.BaseInline
	ImageID string // numeric BGG image ID, never empty
	Size    string // optional size token ("small", "medium", ...), "" = default
}

// NewInternalImage creates an InternalImage node.
func NewInternalImage(imageID, size string) *InternalImage {
	return &InternalImage{ImageID: imageID, Size: size}
}

// Kind implements ast.Node.
func (n *InternalImage) Kind() ast.NodeKind { return KindInternalImage }

// Dump implements ast.Node.
func (n *InternalImage) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"ImageID": n.ImageID,
		"Size":    n.Size,
	}, nil)
}

// ExternalImage is an image hosted outside BGG: !(https://example.com/x.png).
// The URL is an opaque capture; it is never re-parsed or escaped.
type ExternalImage struct {
	ast.BaseInline
	URL string
}

// NewExternalImage creates an ExternalImage node.
func NewExternalImage(url string) *ExternalImage {
	return &ExternalImage{URL: url}
}

// Kind implements ast.Node.
func (n *ExternalImage) Kind() ast.NodeKind { return KindExternalImage }

// Dump implements ast.Node.
func (n *ExternalImage) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"URL": n.URL}, nil)
}

// YouTubeVideo is an embedded YouTube video, from either the full URL form
// (https://www.youtube.com/watch?v=ID) or the short form (youtube=ID).
type YouTubeVideo struct {
	ast.BaseInline
	VideoID string
}

// NewYouTubeVideo creates a YouTubeVideo node.
func NewYouTubeVideo(videoID string) *YouTubeVideo {
	return &YouTubeVideo{VideoID: videoID}
}

// Kind implements ast.Node.
func (n *YouTubeVideo) Kind() ast.NodeKind { return KindYouTubeVideo }

// Dump implements ast.Node.
func (n *YouTubeVideo) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"VideoID": n.VideoID}, nil)
}
