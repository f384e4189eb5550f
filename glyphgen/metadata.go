package glyphgen

import (
	"encoding/json"
	"io"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/teranos/smufl/errors"
)

// GlyphRecord is one entry of the SMuFL glyphnames.json metadata file.
type GlyphRecord struct {
	// RawName is the JSON key, e.g. "noteQuarterUp"; the glyph's identity
	RawName string

	// Codepoint is the SMuFL code point
	Codepoint CodePoint

	// AlternateCodepoint is the legacy Musical Symbols code point, nil when absent
	AlternateCodepoint *CodePoint

	// Description is free text, used only for documentation
	Description string
}

// rawGlyph mirrors one JSON value. Pointers distinguish absent fields from empty ones.
type rawGlyph struct {
	Codepoint          *string `json:"codepoint"`
	AlternateCodepoint *string `json:"alternateCodepoint"`
	Description        *string `json:"description"`
}

// Load parses glyph metadata: a JSON object mapping glyph name to
// {codepoint, alternateCodepoint?, description}. Unknown fields are ignored.
// The returned map carries no order.
func Load(r io.Reader) (map[string]GlyphRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read glyph metadata")
	}
	// encoding/json would silently substitute U+FFFD
	if !utf8.Valid(data) {
		return nil, errors.Wrap(errors.ErrMalformedInput, "invalid UTF-8")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedInput, "invalid JSON: %v", err)
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrMalformedInput, "top-level value must be an object")
	}

	// Sorted so that the first reported error does not depend on map order
	records := make(map[string]GlyphRecord, len(raw))
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		record, err := parseRecord(name, raw[name])
		if err != nil {
			return nil, errors.Wrapf(err, "glyph %q", name)
		}
		records[name] = record
	}
	return records, nil
}

func parseRecord(name string, value json.RawMessage) (GlyphRecord, error) {
	var g rawGlyph
	if err := json.Unmarshal(value, &g); err != nil {
		return GlyphRecord{}, errors.Wrapf(errors.ErrMalformedInput, "%v", err)
	}
	if g.Codepoint == nil {
		return GlyphRecord{}, errors.Wrap(errors.ErrMalformedInput, "missing codepoint")
	}
	if g.Description == nil {
		return GlyphRecord{}, errors.Wrap(errors.ErrMalformedInput, "missing description")
	}

	cp, err := ParseCodepoint(*g.Codepoint)
	if err != nil {
		return GlyphRecord{}, errors.Wrap(err, "codepoint")
	}

	record := GlyphRecord{
		RawName:     name,
		Codepoint:   cp,
		Description: *g.Description,
	}

	if g.AlternateCodepoint != nil {
		alt, err := ParseCodepoint(*g.AlternateCodepoint)
		if err != nil {
			return GlyphRecord{}, errors.Wrap(err, "alternateCodepoint")
		}
		record.AlternateCodepoint = &alt
	}

	return record, nil
}
