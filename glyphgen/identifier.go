package glyphgen

import (
	"maps"
	"slices"
	"strings"

	"github.com/teranos/smufl/errors"
	"github.com/teranos/smufl/glyphgen/util"
)

// Synthesize derives the identifier for a SMuFL glyph name.
// It is deterministic but not reversible; Variant.DisplayName keeps the exact name.
//
//	"noteQuarterUp"        -> "NoteQuarterUp"
//	"note128thUp"          -> "Note128thUp"
//	"accSagittal1TinaDown" -> "AccSagittal1TinaDown"
//	"4stringTabClef"       -> "_4StringTabClef"
func Synthesize(rawName string) string {
	id := util.ToPascalCase(rawName)
	id = util.FixOrdinalSuffixes(id)
	return util.EscapeLeading(id)
}

// BuildVariants synthesizes an identifier for every record and returns the
// variants sorted by identifier. Two names synthesizing to the same
// identifier is an error; which one to rename is left to whoever curates
// the metadata.
func BuildVariants(records map[string]GlyphRecord) ([]Variant, error) {
	owners := make(map[string]string, len(records)) // identifier -> raw name
	variants := make([]Variant, 0, len(records))

	// Sorted so that collision errors name the same pair on every run
	for _, name := range slices.Sorted(maps.Keys(records)) {
		record := records[name]
		if record.RawName != name {
			return nil, errors.AssertionFailedf("record keyed %q carries name %q", name, record.RawName)
		}

		id := Synthesize(name)
		if id == "_" || !util.IsIdentifier(id) {
			return nil, errors.AssertionFailedf("glyph %q synthesized illegal identifier %q", name, id)
		}

		if other, ok := owners[id]; ok {
			err := errors.Wrapf(errors.ErrIdentifierCollision, "glyphs %q and %q both synthesize to %q", other, name, id)
			return nil, errors.WithHint(err, "rename one of the glyphs in the metadata; the generator does not pick a winner")
		}
		owners[id] = name

		variants = append(variants, Variant{
			Identifier:         id,
			DisplayName:        name,
			Description:        record.Description,
			Codepoint:          record.Codepoint,
			AlternateCodepoint: record.AlternateCodepoint,
		})
	}

	slices.SortFunc(variants, func(a, b Variant) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})
	return variants, nil
}
