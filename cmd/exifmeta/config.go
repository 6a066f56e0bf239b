package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that can come from a YAML file. Flags given
// on the command line override the file.
//
//	output: json
//	recursive: true
//	jobs: 8
//	strict: false
//	where: "Make == 'Canon' && FNumber < 4"
//	extensions: [.jpg, .jpeg, .cr2]
//	verbose: false
type Config struct {
	Output     string   `yaml:"output"`
	Recursive  bool     `yaml:"recursive"`
	Jobs       int      `yaml:"jobs"`
	Strict     bool     `yaml:"strict"`
	Where      string   `yaml:"where"`
	Extensions []string `yaml:"extensions"`
	Verbose    bool     `yaml:"verbose"`
}

var outputFormats = []string{"text", "json", "yaml", "cbor"}

func defaultConfig() *Config {
	return &Config{Output: "text"}
}

// loadConfig reads a YAML config file. Unknown keys are rejected.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := defaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !slices.Contains(outputFormats, c.Output) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output, strings.Join(outputFormats, ", "))
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// wantFile reports whether path passes the extension filter. An empty
// filter accepts every file.
func (c *Config) wantFile(path string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if e == ext {
			return true
		}
	}
	return false
}
