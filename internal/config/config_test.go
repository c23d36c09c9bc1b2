package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Search.Threshold != 0.01 {
		t.Errorf("default threshold = %v, want 0.01", cfg.Search.Threshold)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("default max results = %d, want 10", cfg.Search.MaxResults)
	}
	if cfg.Tokenizer.MinTokenLength != 3 {
		t.Errorf("default min token length = %d, want 3", cfg.Tokenizer.MinTokenLength)
	}
	if !cfg.Tokenizer.RemoveStopwords {
		t.Error("stopword removal should default to enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative threshold",
			mutate:  func(c *Config) { c.Search.Threshold = -0.5 },
			wantErr: "threshold",
		},
		{
			name:    "threshold above one",
			mutate:  func(c *Config) { c.Search.Threshold = 1.5 },
			wantErr: "threshold",
		},
		{
			name:    "zero max results",
			mutate:  func(c *Config) { c.Search.MaxResults = 0 },
			wantErr: "max_results",
		},
		{
			name:    "zero min token length",
			mutate:  func(c *Config) { c.Tokenizer.MinTokenLength = 0 },
			wantErr: "min_token_length",
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "xml" },
			wantErr: "output format",
		},
		{
			name:    "bad color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "rainbow" },
			wantErr: "color mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestMergeConfigs(t *testing.T) {
	dst := DefaultConfig()
	src := DefaultConfig()
	src.Search.Threshold = 0.25
	src.Search.MaxResults = 50
	src.Storage.DatabasePath = "/tmp/test.db"

	mergeConfigs(dst, src)

	if dst.Search.Threshold != 0.25 {
		t.Errorf("merged threshold = %v, want 0.25", dst.Search.Threshold)
	}
	if dst.Search.MaxResults != 50 {
		t.Errorf("merged max results = %d, want 50", dst.Search.MaxResults)
	}
	if dst.Storage.DatabasePath != "/tmp/test.db" {
		t.Errorf("merged database path = %q", dst.Storage.DatabasePath)
	}
	// Untouched fields keep their defaults.
	if dst.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("server addr changed unexpectedly: %q", dst.Server.Addr)
	}
}
