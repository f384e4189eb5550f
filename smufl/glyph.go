// Package smufl is a catalogue of glyphs of the Standard Music Font Layout.
//
// Every glyph is a Glyph constant carrying its SMuFL code point and, for
// glyphs that predate SMuFL, its code point in the Unicode Musical Symbols
// block. Glyphs marshal as their SMuFL names, e.g. "noteQuarterUp", so
// serialized data does not depend on the Go constant names.
package smufl

//go:generate go run ../cmd/glyphgen --config ../glyphgen.toml

import (
	"iter"
	"strconv"
	"sync"

	"github.com/teranos/smufl/errors"
)

// ParseGlyph returns the glyph with the given SMuFL name.
func ParseGlyph(name string) (Glyph, bool) {
	g, ok := glyphsByName()[name]
	return g, ok
}

var glyphsByName = sync.OnceValue(func() map[string]Glyph {
	m := make(map[string]Glyph, Len())
	for g := range All() {
		m[g.Name()] = g
	}
	return m
})

// All yields every glyph in catalogue order.
func All() iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for g := Glyph(1); g < glyphEnd; g++ {
			if !yield(g) {
				return
			}
		}
	}
}

// Len returns the number of glyphs in the catalogue.
func Len() int {
	return int(glyphEnd) - 1
}

// IsValid reports whether g is a glyph of the catalogue.
func (g Glyph) IsValid() bool {
	return g > 0 && g < glyphEnd
}

// String returns the SMuFL name of g, or "Glyph(n)" for invalid values.
func (g Glyph) String() string {
	if !g.IsValid() {
		return "Glyph(" + strconv.Itoa(int(g)) + ")"
	}
	return g.Name()
}

// MarshalText implements encoding.TextMarshaler using the SMuFL name.
func (g Glyph) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, g.invalid()
	}
	return []byte(g.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Glyph) UnmarshalText(text []byte) error {
	v, ok := ParseGlyph(string(text))
	if !ok {
		return errors.Newf("smufl: unknown glyph name %q", text)
	}
	*g = v
	return nil
}

func (g Glyph) invalid() error {
	return errors.Newf("smufl: invalid Glyph(%d)", uint16(g))
}

// BEGIN GENERATED SMUFL GLYPHS; DO NOT EDIT.

// Glyph identifies a glyph of the Standard Music Font Layout.
type Glyph uint16

const (
	// GlyphAccSagittal11LargeDiesisDown: 11 large diesis down, 3° down [46 EDO]
	GlyphAccSagittal11LargeDiesisDown Glyph = iota + 1
	// GlyphAccSagittal1TinaDown: 1 tina down, 0.42 cents down
	GlyphAccSagittal1TinaDown
	// GlyphAccidentalFlat: Flat
	GlyphAccidentalFlat
	// GlyphAccidentalNatural: Natural
	GlyphAccidentalNatural
	// GlyphAccidentalSharp: Sharp
	GlyphAccidentalSharp
	// GlyphArticAccentAbove: Accent above
	GlyphArticAccentAbove
	// GlyphAugmentationDot: Augmentation dot
	GlyphAugmentationDot
	// GlyphDynamicForte: Forte
	GlyphDynamicForte
	// GlyphFClef: F clef
	GlyphFClef
	// GlyphFlag8thUp: Combining flag 1 (8th) above
	GlyphFlag8thUp
	// GlyphGClef: G clef
	GlyphGClef
	// GlyphNote128thUp: 128th note (semihemidemisemiquaver) stem up
	GlyphNote128thUp
	// GlyphNote32ndUp: 32nd note (demisemiquaver) stem up
	GlyphNote32ndUp
	// GlyphNote8thUp: Eighth note (quaver) stem up
	GlyphNote8thUp
	// GlyphNoteQuarterUp: Quarter note (crotchet) stem up
	GlyphNoteQuarterUp
	// GlyphNoteheadBlack: Black notehead
	GlyphNoteheadBlack
	// GlyphRestQuarter: Quarter (crotchet) rest
	GlyphRestQuarter
	// GlyphSegno: Segno
	GlyphSegno
	// GlyphStaff5Lines: 5-line staff
	GlyphStaff5Lines
	// GlyphTimeSig4: Time signature 4
	GlyphTimeSig4
	// Glyph_4StringTabClef: 4-string tab clef
	Glyph_4StringTabClef

	glyphEnd
)

// Codepoint returns the SMuFL code point of g.
func (g Glyph) Codepoint() rune {
	switch g {
	case GlyphAccSagittal11LargeDiesisDown:
		return 0xE30D
	case GlyphAccSagittal1TinaDown:
		return 0xE3F5
	case GlyphAccidentalFlat:
		return 0xE260
	case GlyphAccidentalNatural:
		return 0xE261
	case GlyphAccidentalSharp:
		return 0xE262
	case GlyphArticAccentAbove:
		return 0xE4A0
	case GlyphAugmentationDot:
		return 0xE1E7
	case GlyphDynamicForte:
		return 0xE522
	case GlyphFClef:
		return 0xE062
	case GlyphFlag8thUp:
		return 0xE240
	case GlyphGClef:
		return 0xE050
	case GlyphNote128thUp:
		return 0xE1DF
	case GlyphNote32ndUp:
		return 0xE1DB
	case GlyphNote8thUp:
		return 0xE1D7
	case GlyphNoteQuarterUp:
		return 0xE1D5
	case GlyphNoteheadBlack:
		return 0xE0A4
	case GlyphRestQuarter:
		return 0xE4E5
	case GlyphSegno:
		return 0xE047
	case GlyphStaff5Lines:
		return 0xE014
	case GlyphTimeSig4:
		return 0xE084
	case Glyph_4StringTabClef:
		return 0xE06E
	}
	panic(g.invalid())
}

// AlternateCodepoint returns the code point of g in the Unicode Musical
// Symbols block, if it has one.
func (g Glyph) AlternateCodepoint() (rune, bool) {
	switch g {
	case GlyphAccidentalFlat:
		return 0x266D, true
	case GlyphAccidentalNatural:
		return 0x266E, true
	case GlyphAccidentalSharp:
		return 0x266F, true
	case GlyphArticAccentAbove:
		return 0x1D17B, true
	case GlyphAugmentationDot:
		return 0x1D16D, true
	case GlyphDynamicForte:
		return 0x1D191, true
	case GlyphFClef:
		return 0x1D122, true
	case GlyphFlag8thUp:
		return 0x1D16E, true
	case GlyphGClef:
		return 0x1D11E, true
	case GlyphNote128thUp:
		return 0x1D164, true
	case GlyphNote32ndUp:
		return 0x1D162, true
	case GlyphNote8thUp:
		return 0x1D160, true
	case GlyphNoteQuarterUp:
		return 0x1D15F, true
	case GlyphNoteheadBlack:
		return 0x1D158, true
	case GlyphRestQuarter:
		return 0x1D13D, true
	case GlyphSegno:
		return 0x1D10B, true
	case GlyphStaff5Lines:
		return 0x1D11A, true
	}
	return 0, false
}

// Name returns the SMuFL name of g, e.g. "noteQuarterUp".
func (g Glyph) Name() string {
	switch g {
	case GlyphAccSagittal11LargeDiesisDown:
		return "accSagittal11LargeDiesisDown"
	case GlyphAccSagittal1TinaDown:
		return "accSagittal1TinaDown"
	case GlyphAccidentalFlat:
		return "accidentalFlat"
	case GlyphAccidentalNatural:
		return "accidentalNatural"
	case GlyphAccidentalSharp:
		return "accidentalSharp"
	case GlyphArticAccentAbove:
		return "articAccentAbove"
	case GlyphAugmentationDot:
		return "augmentationDot"
	case GlyphDynamicForte:
		return "dynamicForte"
	case GlyphFClef:
		return "fClef"
	case GlyphFlag8thUp:
		return "flag8thUp"
	case GlyphGClef:
		return "gClef"
	case GlyphNote128thUp:
		return "note128thUp"
	case GlyphNote32ndUp:
		return "note32ndUp"
	case GlyphNote8thUp:
		return "note8thUp"
	case GlyphNoteQuarterUp:
		return "noteQuarterUp"
	case GlyphNoteheadBlack:
		return "noteheadBlack"
	case GlyphRestQuarter:
		return "restQuarter"
	case GlyphSegno:
		return "segno"
	case GlyphStaff5Lines:
		return "staff5Lines"
	case GlyphTimeSig4:
		return "timeSig4"
	case Glyph_4StringTabClef:
		return "4stringTabClef"
	}
	panic(g.invalid())
}

// END GENERATED SMUFL GLYPHS
