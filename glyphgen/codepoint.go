package glyphgen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/teranos/smufl/errors"
)

// CodePoint is a Unicode scalar value.
type CodePoint rune

// String renders c in the metadata notation, e.g. "U+E260".
func (c CodePoint) String() string {
	return fmt.Sprintf("U+%04X", rune(c))
}

// ParseCodepoint parses "U+" followed by 1-6 hex digits.
// Surrogates and values beyond U+10FFFF are rejected.
func ParseCodepoint(s string) (CodePoint, error) {
	digits, ok := strings.CutPrefix(s, "U+")
	if !ok {
		return 0, errors.Wrapf(errors.ErrMalformedCodepoint, "%q: missing U+ prefix", s)
	}
	if len(digits) == 0 || len(digits) > 6 {
		return 0, errors.Wrapf(errors.ErrMalformedCodepoint, "%q: want 1 to 6 hex digits", s)
	}

	for _, c := range digits {
		if !isHexDigit(c) {
			return 0, errors.Wrapf(errors.ErrMalformedCodepoint, "%q: invalid hex digit %q", s, c)
		}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrMalformedCodepoint, "%q: %v", s, err)
	}
	if !utf8.ValidRune(rune(v)) {
		return 0, errors.Wrapf(errors.ErrMalformedCodepoint, "%q: not a Unicode scalar value", s)
	}
	return CodePoint(v), nil
}

func isHexDigit(c rune) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
