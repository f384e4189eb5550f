package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultMetadata, cfg.Glyphgen.Metadata)
	assert.Equal(t, DefaultTarget, cfg.Glyphgen.Target)
	assert.Equal(t, DefaultDocs, cfg.Glyphgen.Docs)
	assert.Equal(t, "Glyph", cfg.Glyphgen.TypeName)
	assert.Equal(t, "Glyph", cfg.Glyphgen.ConstPrefix)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `[glyphgen]
metadata = "data/glyphnames.json"
target = "/abs/catalogue.go"
docs = ""
const_prefix = ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data/glyphnames.json"), cfg.Glyphgen.Metadata)
	assert.Equal(t, "/abs/catalogue.go", cfg.Glyphgen.Target, "absolute paths are kept")
	assert.Empty(t, cfg.Glyphgen.Docs, "empty docs disables the markdown table")
	assert.Equal(t, "Glyph", cfg.Glyphgen.TypeName, "unset keys fall back to defaults")
	assert.Empty(t, cfg.Glyphgen.ConstPrefix)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Glyphgen: GlyphgenConfig{
			Metadata:    "glyphnames.json",
			Target:      "glyph.go",
			TypeName:    "Glyph",
			ConstPrefix: "Glyph",
		}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty prefix", func(c *Config) { c.Glyphgen.ConstPrefix = "" }, ""},
		{"no metadata", func(c *Config) { c.Glyphgen.Metadata = "" }, "glyphgen.metadata"},
		{"no target", func(c *Config) { c.Glyphgen.Target = "" }, "glyphgen.target"},
		{"unexported type", func(c *Config) { c.Glyphgen.TypeName = "glyph" }, "glyphgen.type_name"},
		{"illegal type", func(c *Config) { c.Glyphgen.TypeName = "Gly ph" }, "glyphgen.type_name"},
		{"unexported prefix", func(c *Config) { c.Glyphgen.ConstPrefix = "_" }, "glyphgen.const_prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Empty(t, Find(nested))

	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[glyphgen]\n"), 0644))
	assert.Equal(t, path, Find(nested))
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := &Config{Glyphgen: GlyphgenConfig{
		Metadata:    "smufl/glyphnames.json",
		Target:      "smufl/glyph.go",
		Docs:        "smufl/GLYPHS.md",
		TypeName:    "Glyph",
		ConstPrefix: "Glyph",
	}}

	out, err := cfg.Encode()
	require.NoError(t, err)
	assert.Contains(t, out, "[glyphgen]")
	assert.Contains(t, out, `type_name = "Glyph"`)

	var decoded Config
	_, err = toml.Decode(out, &decoded)
	require.NoError(t, err)
	assert.Equal(t, *cfg, decoded)
}
