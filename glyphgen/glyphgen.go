// Package glyphgen generates the SMuFL glyph catalogue from glyphnames.json.
//
// # Architecture
//
// The pipeline has four stages, each a pure function of its input:
//  1. Load parses the metadata into GlyphRecords (metadata.go)
//  2. BuildVariants synthesizes identifiers and orders them (identifier.go)
//  3. A Generator renders the variants for one target (golang/, markdown/)
//  4. CompareRegion / CompareFile compare against the committed files;
//     the resulting Updates rewrite them on drift (check.go)
//
// # Design Decisions
//
//   - Identifiers are for ergonomics only. The exact SMuFL name travels as
//     Variant.DisplayName and is what the catalogue (de)serializes.
//   - Output is ordered by identifier, never by map iteration, so unchanged
//     input always yields byte-identical output and CI can compare bytes.
//   - Only the marker-delimited region of the target file is owned by the
//     generator; it is a plain three-way string split, never an AST edit.
//   - Drift rewrites the file and still fails, so a local run fixes the
//     catalogue while CI, which discards the write, reports it stale.
package glyphgen

import (
	"io"

	"github.com/teranos/smufl/errors"
)

// Variant is one catalogue entry, derived 1:1 from a GlyphRecord.
type Variant struct {
	// Identifier is the synthesized name, e.g. "Note128thUp"
	Identifier string

	// DisplayName is the raw SMuFL name, the serialization alias
	DisplayName string

	// Description is unescaped; each Generator escapes for its own syntax
	Description string

	Codepoint          CodePoint
	AlternateCodepoint *CodePoint
}

// Generator defines the interface for target-specific catalogue emitters.
type Generator interface {
	// Language returns the target name (e.g., "go", "markdown")
	Language() string

	// FileExtension returns the file extension for this target (e.g., "go", "md")
	FileExtension() string

	// GenerateFile renders the variants. It must be deterministic and may
	// assume the variants came from BuildVariants.
	GenerateFile(variants []Variant) string
}

// Build loads metadata from r and returns the ordered variants.
func Build(r io.Reader) ([]Variant, error) {
	records, err := Load(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.Wrap(errors.ErrMalformedInput, "no glyphs defined")
	}
	return BuildVariants(records)
}
