package config

import (
	"go/token"

	"github.com/teranos/smufl/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	g := c.Glyphgen

	if g.Metadata == "" {
		return errors.New("glyphgen.metadata cannot be empty")
	}
	if g.Target == "" {
		return errors.New("glyphgen.target cannot be empty")
	}
	// Docs is optional - empty disables the markdown table

	if !token.IsIdentifier(g.TypeName) || !token.IsExported(g.TypeName) {
		return errors.Newf("glyphgen.type_name must be an exported Go identifier, got %q", g.TypeName)
	}

	// Prefix may be empty, but must not make constants unexported or illegal
	if g.ConstPrefix != "" && (!token.IsIdentifier(g.ConstPrefix) || !token.IsExported(g.ConstPrefix)) {
		return errors.Newf("glyphgen.const_prefix must be empty or an exported Go identifier, got %q", g.ConstPrefix)
	}

	return nil
}
