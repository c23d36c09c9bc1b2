package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.questify.yaml",               // Project-specific config (highest priority)
	"~/.config/questify/config.yaml", // User config
	"/etc/questify/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.questify.yaml
// 4. ~/.config/questify/config.yaml
// 5. /etc/questify/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order so higher
		// priority files overwrite lower ones.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	config.Storage.DatabasePath = expandPath(config.Storage.DatabasePath)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Unmarshal over a copy of the defaults so fields absent from the file
	// keep their default values instead of collapsing to zero.
	fileConfig := *DefaultConfig()
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"QUESTIFY_SEARCH_THRESHOLD":          func(v string) error { return parseFloat(v, &config.Search.Threshold) },
		"QUESTIFY_SEARCH_MAX_RESULTS":        func(v string) error { return parseInt(v, &config.Search.MaxResults) },
		"QUESTIFY_TOKENIZER_MIN_LENGTH":      func(v string) error { return parseInt(v, &config.Tokenizer.MinTokenLength) },
		"QUESTIFY_TOKENIZER_STOPWORDS":       func(v string) error { return parseBool(v, &config.Tokenizer.RemoveStopwords) },
		"QUESTIFY_STORAGE_DATABASE_PATH":     func(v string) error { config.Storage.DatabasePath = v; return nil },
		"QUESTIFY_SERVER_ADDR":               func(v string) error { config.Server.Addr = v; return nil },
		"QUESTIFY_OUTPUT_FORMAT":             func(v string) error { config.Output.DefaultFormat = v; return nil },
		"QUESTIFY_OUTPUT_COLOR_MODE":         func(v string) error { config.Output.ColorMode = v; return nil },
		"QUESTIFY_OUTPUT_VERBOSE":            func(v string) error { return parseBool(v, &config.Output.Verbose) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}
	return nil
}

// mergeConfigs merges source config into destination config
// Only non-zero values from source are merged
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeSearchConfig(&dst.Search, &src.Search)
	mergeTokenizerConfig(&dst.Tokenizer, &src.Tokenizer)
	mergeStorageConfig(&dst.Storage, &src.Storage)
	mergeServerConfig(&dst.Server, &src.Server)
	mergeOutputConfig(&dst.Output, &src.Output)
}

func mergeSearchConfig(dst, src *SearchConfig) {
	if src.Threshold != 0 {
		dst.Threshold = src.Threshold
	}
	if src.MaxResults != 0 {
		dst.MaxResults = src.MaxResults
	}
}

func mergeTokenizerConfig(dst, src *TokenizerConfig) {
	if src.MinTokenLength != 0 {
		dst.MinTokenLength = src.MinTokenLength
	}
	mergeIfSet(&dst.RemoveStopwords, src.RemoveStopwords)
}

func mergeStorageConfig(dst, src *StorageConfig) {
	if src.DatabasePath != "" {
		dst.DatabasePath = src.DatabasePath
	}
}

func mergeServerConfig(dst, src *ServerConfig) {
	if src.Addr != "" {
		dst.Addr = src.Addr
	}
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	mergeIfSet(&dst.Verbose, src.Verbose)
}

func mergeIfSet(dst *bool, src bool) {
	// For now, always merge - this could be improved with custom unmarshaling
	*dst = src
}

// validateConfigPath rejects paths that escape to unexpected locations
func validateConfigPath(path string) error {
	cleaned := filepath.Clean(path)
	if strings.Contains(cleaned, "..") {
		return fmt.Errorf("path must not contain '..': %s", path)
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func parseInt(value string, target *int) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func parseFloat(value string, target *float64) error {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func parseBool(value string, target *bool) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}
