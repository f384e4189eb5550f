package config

import "github.com/spf13/viper"

// Default values, relative to the project root
const (
	DefaultMetadata    = "smufl/glyphnames.json"
	DefaultTarget      = "smufl/glyph.go"
	DefaultDocs        = "smufl/GLYPHS.md"
	DefaultTypeName    = "Glyph"
	DefaultConstPrefix = "Glyph"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("glyphgen.metadata", DefaultMetadata)
	v.SetDefault("glyphgen.target", DefaultTarget)
	v.SetDefault("glyphgen.docs", DefaultDocs)
	v.SetDefault("glyphgen.type_name", DefaultTypeName)
	v.SetDefault("glyphgen.const_prefix", DefaultConstPrefix)
}
