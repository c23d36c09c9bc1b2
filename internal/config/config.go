package config

import "fmt"

// Config holds the complete application configuration
type Config struct {
	Version   string          `yaml:"version" json:"version"`
	Search    SearchConfig    `yaml:"search" json:"search"`
	Tokenizer TokenizerConfig `yaml:"tokenizer" json:"tokenizer"`
	Storage   StorageConfig   `yaml:"storage" json:"storage"`
	Server    ServerConfig    `yaml:"server" json:"server"`
	Output    OutputConfig    `yaml:"output" json:"output"`
}

// SearchConfig carries the default query parameters. Per-query flags
// override these.
type SearchConfig struct {
	Threshold  float64 `yaml:"threshold" json:"threshold"`     // minimum similarity score, inclusive
	MaxResults int     `yaml:"max_results" json:"max_results"` // top-K cutoff
}

// TokenizerConfig configures text normalization
type TokenizerConfig struct {
	MinTokenLength  int  `yaml:"min_token_length" json:"min_token_length"`
	RemoveStopwords bool `yaml:"remove_stopwords" json:"remove_stopwords"`
}

// StorageConfig configures the document store
type StorageConfig struct {
	DatabasePath string `yaml:"database_path" json:"database_path"` // SQLite file location
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"` // listen address for `questify serve`
}

// OutputConfig configures CLI output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Search: SearchConfig{
			Threshold:  0.01,
			MaxResults: 10,
		},
		Tokenizer: TokenizerConfig{
			MinTokenLength:  3,
			RemoveStopwords: true,
		},
		Storage: StorageConfig{
			DatabasePath: "~/.local/share/questify/documents.db",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if err := c.validateSearchConfig(); err != nil {
		return err
	}
	if err := c.validateTokenizerConfig(); err != nil {
		return err
	}
	return c.validateOutputConfig()
}

// validateSearchConfig validates search-related configuration
func (c *Config) validateSearchConfig() error {
	if c.Search.Threshold < 0 || c.Search.Threshold > 1 {
		return fmt.Errorf("search threshold must be within [0,1], got %v", c.Search.Threshold)
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.Search.MaxResults)
	}
	return nil
}

// validateTokenizerConfig validates tokenizer-related configuration
func (c *Config) validateTokenizerConfig() error {
	if c.Tokenizer.MinTokenLength < 1 {
		return fmt.Errorf("min_token_length must be at least 1, got %d", c.Tokenizer.MinTokenLength)
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json": true,
			"text": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
