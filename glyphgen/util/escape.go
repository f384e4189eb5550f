package util

import (
	"regexp"
	"strings"
	"unicode"
)

// wordJoiner is invisible when rendered and is not an identifier or import path character.
const wordJoiner = "\u2060"

// docLinkLike matches bracketed text go/doc/comment may resolve as a doc
// link, e.g. [Glyph], [*bytes.Buffer] or [encoding/json]. Text with spaces
// never resolves.
var docLinkLike = regexp.MustCompile(`\[([^\[\]\s]+)\]`)

var markdownEscaper = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`, "|", `\|`)

// singleLine maps line breaks, other control characters and the byte order
// mark to spaces and trims the result. The Go scanner rejects NUL and BOM
// even inside comments.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '\uFEFF' || r == '\u2028' || r == '\u2029' {
			return ' '
		}
		return r
	}, s))
}

// EscapeDocComment makes free text safe for a single-line Go doc comment.
// Doc comments have no escape syntax, so the text is kept as is except
// where go/doc would reinterpret it: bracketed doc links and the ``
// and '' quote forms get a word joiner that breaks the pattern without
// changing how the text reads.
func EscapeDocComment(s string) string {
	s = singleLine(s)
	s = docLinkLike.ReplaceAllString(s, "["+wordJoiner+"${1}]")
	if strings.Contains(s, "``") {
		s = strings.ReplaceAll(s, "`", "`"+wordJoiner)
	}
	if strings.Contains(s, "''") {
		s = strings.ReplaceAll(s, "'", "'"+wordJoiner)
	}
	return s
}

// EscapeMarkdownCell makes free text safe for a single markdown table cell.
func EscapeMarkdownCell(s string) string {
	return markdownEscaper.Replace(singleLine(s))
}
