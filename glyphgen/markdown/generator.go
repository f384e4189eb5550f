package markdown

import (
	"fmt"
	"strings"

	"github.com/teranos/smufl/glyphgen"
	"github.com/teranos/smufl/glyphgen/util"
)

// Generator implements glyphgen.Generator for a markdown glyph table
type Generator struct {
	// Source is the metadata file name shown in the header, e.g. "glyphnames.json"
	Source string
	// ConstPrefix matches the Go generator so the table names real constants
	ConstPrefix string
}

// NewGenerator creates a new markdown generator
func NewGenerator(source, constPrefix string) *Generator {
	return &Generator{Source: source, ConstPrefix: constPrefix}
}

// Language returns the target language name
func (g *Generator) Language() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown
func (g *Generator) FileExtension() string {
	return "md"
}

// GenerateFile renders the whole document, one table row per glyph in identifier order.
func (g *Generator) GenerateFile(variants []glyphgen.Variant) string {
	var sb strings.Builder

	sb.WriteString("# SMuFL glyphs\n\n")
	sb.WriteString(fmt.Sprintf("Generated by `glyphgen` from `%s`. Do not edit.\n\n", g.Source))
	sb.WriteString(fmt.Sprintf("%d glyphs.\n\n", len(variants)))

	sb.WriteString("| Name | Constant | Codepoint | Alternate | Description |\n")
	sb.WriteString("| --- | --- | --- | --- | --- |\n")

	for _, v := range variants {
		alt := "-"
		if v.AlternateCodepoint != nil {
			alt = v.AlternateCodepoint.String()
		}
		sb.WriteString(fmt.Sprintf("| `%s` | `%s` | %s | %s | %s |\n",
			v.DisplayName,
			g.ConstPrefix+v.Identifier,
			v.Codepoint,
			alt,
			util.EscapeMarkdownCell(v.Description),
		))
	}

	return sb.String()
}
