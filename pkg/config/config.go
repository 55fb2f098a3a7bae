package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// 📄 DefaultConfigFile is the config file looked up when none is given
	DefaultConfigFile = ".swiftfix.yaml"

	// 🎯 DefaultTargetFile is the test file the fix was written for
	DefaultTargetFile = "VideoPlayerViewFactoryTests.swift"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement represents an extra string replacement to apply
type Replacement struct {
	Old  string  `json:"old" yaml:"old"`                       // Original string to replace
	New  string  `json:"new" yaml:"new"`                       // New string to use
	File *string `json:"file,omitempty" yaml:"file,omitempty"` // Optional glob restricting which files it applies to
}

// 📚 Config represents the complete configuration
type Config struct {
	Target       string        `json:"target,omitempty" yaml:"target,omitempty"`             // File to rewrite
	Backup       bool          `json:"backup,omitempty" yaml:"backup,omitempty"`             // Keep a .bak copy before writing
	Async        bool          `json:"async,omitempty" yaml:"async,omitempty"`               // Run operations on the async runner
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty"` // Extra replacements after the built-in rules
}

// 🏭 Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Target: DefaultTargetFile,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		// A missing config file is not an error, the defaults cover it
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("config file not found, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Set defaults
	if cfg.Target == "" {
		cfg.Target = DefaultTargetFile
	}

	// Clean up paths
	cfg.Target = filepath.Clean(cfg.Target)

	// Check replacements
	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacements[%d].old is required", i)
		}
		if r.File != nil {
			if *r.File == "" {
				return errors.Errorf("replacements[%d].file must not be empty when set", i)
			}
			if !doublestar.ValidatePattern(*r.File) {
				return errors.Errorf("replacements[%d].file is not a valid glob: %s", i, *r.File)
			}
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	if len(cfg.Replacements) == 0 {
		return cfg.Target
	}
	return fmt.Sprintf("%s (+%d replacements)", cfg.Target, len(cfg.Replacements))
}
