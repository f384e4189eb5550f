// Package config loads the glyphgen configuration from glyphgen.toml.
//
// Precedence (lowest to highest): defaults < project glyphgen.toml < CLI flags.
// Relative paths in the file are resolved against the directory holding it,
// so the generator behaves the same from any working directory.
package config

// FileName is the project configuration file searched for by Find.
const FileName = "glyphgen.toml"

// Config is the root configuration.
type Config struct {
	Glyphgen GlyphgenConfig `mapstructure:"glyphgen" toml:"glyphgen"`
}

// GlyphgenConfig configures one catalogue generation.
type GlyphgenConfig struct {
	// Metadata is the SMuFL glyphnames.json file
	Metadata string `mapstructure:"metadata" toml:"metadata"`

	// Target is the Go source file holding the marker-delimited catalogue region
	Target string `mapstructure:"target" toml:"target"`

	// Docs is the generated markdown glyph table; empty disables it
	Docs string `mapstructure:"docs" toml:"docs"`

	// TypeName is the Go type of the catalogue, e.g. "Glyph"
	TypeName string `mapstructure:"type_name" toml:"type_name"`

	// ConstPrefix is prepended to each synthesized identifier to form the constant name
	ConstPrefix string `mapstructure:"const_prefix" toml:"const_prefix"`
}
