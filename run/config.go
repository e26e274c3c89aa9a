package run

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls a generation run. Zero values fall back to the
// defaults, so a partial .cmcdc.yaml only overrides what it names.
type Config struct {
	Name          string   `yaml:"name"`
	Extensions    []string `yaml:"extensions"`
	IgnorePaths   []string `yaml:"ignore_paths"`
	Format        string   `yaml:"format"` // text, csv, xlsx or json
	Output        string   `yaml:"output"`
	StubPath      string   `yaml:"stub_path"`
	StubTemplate  string   `yaml:"stub_template"` // path to a custom template file
	MaxConditions int      `yaml:"max_conditions"`
	MaxFileSize   int64    `yaml:"max_file_size"`
}

// DefaultConfig returns the configuration used when no .cmcdc.yaml is
// present. The condition cap bounds the 2^n brute-force search; C
// decisions wider than that are almost certainly generated code.
func DefaultConfig() Config {
	return Config{
		Name:          "cmcdc",
		Extensions:    []string{".c", ".h"},
		Format:        "text",
		MaxConditions: 16,
		MaxFileSize:   10 * 1024 * 1024,
	}
}

// LoadConfig reads a YAML configuration file over the defaults. An
// empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(config.Extensions) == 0 {
		config.Extensions = DefaultConfig().Extensions
	}
	if config.MaxConditions <= 0 {
		config.MaxConditions = DefaultConfig().MaxConditions
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = DefaultConfig().MaxFileSize
	}
	return config, nil
}

func (c Config) hasDesiredExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range c.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
