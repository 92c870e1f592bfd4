package bggrender

import "github.com/yuin/goldmark/util"

// Wrap surrounds contents with a BGG markup tag: [code]contents[/code].
// Contents must already be rendered; Wrap never escapes them.
func Wrap(code, contents string) string {
	return "[" + code + "]" + contents + "[/" + code + "]"
}

// WrapParam is Wrap with a tag parameter: [code=param]contents[/code].
func WrapParam(code, contents, param string) string {
	return "[" + code + "=" + param + "]" + contents + "[/" + code + "]"
}

// EscapeURL percent-encodes the characters that are unsafe inside a
// bracket-tag parameter, notably "]" which would close the tag
// (https://boardgamegeek.com/wiki/page/Forum_Formatting#toc17). It reuses
// Goldmark's URL escaping so destinations come out exactly as the host
// engine's own link renderer would emit them.
func EscapeURL(raw string) string {
	return string(util.URLEscape([]byte(raw), true))
}
