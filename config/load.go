package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/teranos/smufl/errors"
)

// New returns a Viper instance with defaults set and, if configPath is not
// empty, the file merged in. Callers bind CLI flags on top before Load.
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configPath == "" {
		return v, nil
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return v, nil
}

// Load unmarshals v, resolves relative paths against baseDir and validates the result.
func Load(v *viper.Viper, baseDir string) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	config.Glyphgen.resolve(baseDir)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path.
// Relative paths inside it are resolved against the file's directory.
func LoadFromFile(configPath string) (*Config, error) {
	v, err := New(configPath)
	if err != nil {
		return nil, err
	}
	return Load(v, filepath.Dir(configPath))
}

// Find searches for glyphgen.toml by walking up the directory tree from dir.
// Returns the path to the first file found, or empty string if none found.
func Find(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			return ""
		}
		dir = parent
	}
}

// Encode renders c as TOML.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", errors.Wrap(err, "failed to encode config")
	}
	return buf.String(), nil
}

func (g *GlyphgenConfig) resolve(baseDir string) {
	g.Metadata = resolvePath(baseDir, g.Metadata)
	g.Target = resolvePath(baseDir, g.Target)
	g.Docs = resolvePath(baseDir, g.Docs)
}

func resolvePath(baseDir, path string) string {
	if path == "" || baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
