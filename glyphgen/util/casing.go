package util

import (
	"go/token"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// ordinalSuffix matches a digit run followed by a capitalised English ordinal suffix.
var ordinalSuffix = regexp.MustCompile(`[0-9]+(Th|Nd)`)

// ToPascalCase converts camelCase to PascalCase.
// Word boundaries are lower→upper and letter→digit transitions; the letter
// following a digit run is capitalised ("note8thUp" -> "Note8ThUp").
func ToPascalCase(s string) string {
	return strcase.ToCamel(s)
}

// FixOrdinalSuffixes lower-cases "Th" and "Nd" directly after a digit run,
// undoing the capitalisation ToPascalCase applies to ordinals
// ("Note128ThUp" -> "Note128thUp"). Digits and all other text are untouched.
func FixOrdinalSuffixes(s string) string {
	return ordinalSuffix.ReplaceAllStringFunc(s, func(m string) string {
		// The suffix is always the final two ASCII letters of the match
		return m[:len(m)-2] + strings.ToLower(m[len(m)-2:])
	})
}

// EscapeLeading prepends an underscore when s does not start with a letter
// ("4StringTabClef" -> "_4StringTabClef").
func EscapeLeading(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if s == "" || !unicode.IsLetter(r) {
		return "_" + s
	}
	return s
}

// IsIdentifier reports whether s is a legal Go identifier that is not a keyword.
func IsIdentifier(s string) bool {
	return token.IsIdentifier(s)
}
