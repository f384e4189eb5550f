// Package golang renders the glyph catalogue as Go source.
//
// The output is the body of the marker-delimited region in the catalogue
// file: the glyph type, one constant per glyph, and the Codepoint,
// AlternateCodepoint and Name accessors. It never needs column alignment,
// so it is gofmt-stable as emitted.
package golang

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teranos/smufl/glyphgen"
	"github.com/teranos/smufl/glyphgen/util"
)

// EndConst is the unexported constant closing the const block; hand-written
// code iterates glyphs up to it.
const EndConst = "glyphEnd"

// Generator implements glyphgen.Generator for Go
type Generator struct {
	// TypeName is the catalogue type, e.g. "Glyph"
	TypeName string
	// ConstPrefix is prepended to each identifier, e.g. "Glyph" + "_4StringTabClef"
	ConstPrefix string
}

// NewGenerator creates a new Go generator
func NewGenerator(typeName, constPrefix string) *Generator {
	return &Generator{TypeName: typeName, ConstPrefix: constPrefix}
}

// Language returns the target language name
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns the file extension for Go
func (g *Generator) FileExtension() string {
	return "go"
}

// ConstName returns the Go constant naming v.
func (g *Generator) ConstName(v glyphgen.Variant) string {
	return g.ConstPrefix + v.Identifier
}

// GenerateFile renders the catalogue region. It panics if the variants
// violate what BuildVariants guarantees.
func (g *Generator) GenerateFile(variants []glyphgen.Variant) string {
	g.checkInvariants(variants)

	var sb strings.Builder
	first, _ := utf8.DecodeRuneInString(g.TypeName)
	recv := string(unicode.ToLower(first))

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("// %s identifies a glyph of the Standard Music Font Layout.\n", g.TypeName))
	sb.WriteString(fmt.Sprintf("type %s uint16\n\n", g.TypeName))

	// Constants, starting at 1 so the zero value is not a glyph
	sb.WriteString("const (\n")
	for i, v := range variants {
		sb.WriteString(fmt.Sprintf("\t// %s\n", g.docComment(v)))
		if i == 0 {
			sb.WriteString(fmt.Sprintf("\t%s %s = iota + 1\n", g.ConstName(v), g.TypeName))
		} else {
			sb.WriteString(fmt.Sprintf("\t%s\n", g.ConstName(v)))
		}
	}
	sb.WriteString(fmt.Sprintf("\n\t%s\n", EndConst))
	sb.WriteString(")\n\n")

	// Codepoint: one case per glyph, no default
	sb.WriteString(fmt.Sprintf("// Codepoint returns the SMuFL code point of %s.\n", recv))
	sb.WriteString(fmt.Sprintf("func (%s %s) Codepoint() rune {\n", recv, g.TypeName))
	sb.WriteString(fmt.Sprintf("\tswitch %s {\n", recv))
	for _, v := range variants {
		sb.WriteString(fmt.Sprintf("\tcase %s:\n", g.ConstName(v)))
		sb.WriteString(fmt.Sprintf("\t\treturn %s\n", runeLiteral(v.Codepoint)))
	}
	sb.WriteString("\t}\n")
	sb.WriteString(fmt.Sprintf("\tpanic(%s.invalid())\n", recv))
	sb.WriteString("}\n\n")

	// AlternateCodepoint: only glyphs with a legacy slot
	sb.WriteString(fmt.Sprintf("// AlternateCodepoint returns the code point of %s in the Unicode Musical\n", recv))
	sb.WriteString("// Symbols block, if it has one.\n")
	sb.WriteString(fmt.Sprintf("func (%s %s) AlternateCodepoint() (rune, bool) {\n", recv, g.TypeName))
	sb.WriteString(fmt.Sprintf("\tswitch %s {\n", recv))
	for _, v := range variants {
		if v.AlternateCodepoint == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("\tcase %s:\n", g.ConstName(v)))
		sb.WriteString(fmt.Sprintf("\t\treturn %s, true\n", runeLiteral(*v.AlternateCodepoint)))
	}
	sb.WriteString("\t}\n")
	sb.WriteString("\treturn 0, false\n")
	sb.WriteString("}\n\n")

	// Name: the serialization alias
	sb.WriteString(fmt.Sprintf("// Name returns the SMuFL name of %s, e.g. \"noteQuarterUp\".\n", recv))
	sb.WriteString(fmt.Sprintf("func (%s %s) Name() string {\n", recv, g.TypeName))
	sb.WriteString(fmt.Sprintf("\tswitch %s {\n", recv))
	for _, v := range variants {
		sb.WriteString(fmt.Sprintf("\tcase %s:\n", g.ConstName(v)))
		sb.WriteString(fmt.Sprintf("\t\treturn %s\n", strconv.Quote(v.DisplayName)))
	}
	sb.WriteString("\t}\n")
	sb.WriteString(fmt.Sprintf("\tpanic(%s.invalid())\n", recv))
	sb.WriteString("}\n\n")

	return sb.String()
}

func (g *Generator) docComment(v glyphgen.Variant) string {
	desc := util.EscapeDocComment(v.Description)
	if desc == "" {
		return g.ConstName(v)
	}
	return g.ConstName(v) + ": " + desc
}

func (g *Generator) checkInvariants(variants []glyphgen.Variant) {
	if !util.IsIdentifier(g.TypeName) {
		panic(fmt.Sprintf("golang: illegal type name %q", g.TypeName))
	}
	if len(variants) == 0 || len(variants) >= math.MaxUint16 {
		panic(fmt.Sprintf("golang: %d glyphs do not fit a uint16 catalogue", len(variants)))
	}
	for i, v := range variants {
		if name := g.ConstName(v); !util.IsIdentifier(name) || name == EndConst {
			panic(fmt.Sprintf("golang: illegal constant name %q", name))
		}
		if i > 0 && variants[i-1].Identifier >= v.Identifier {
			panic(fmt.Sprintf("golang: variants not strictly ordered at %q", v.Identifier))
		}
	}
}

// runeLiteral renders c as an upper-case hex literal, e.g. 0xE260 or 0x1D165.
func runeLiteral(c glyphgen.CodePoint) string {
	return fmt.Sprintf("0x%04X", rune(c))
}
