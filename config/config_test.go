package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.OutputFormat != DefaultOutputFormat {
		t.Errorf("OutputFormat = %v, want %v", cfg.OutputFormat, DefaultOutputFormat)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Debug {
		t.Error("Debug should be false by default")
	}
}

// TestOutputFormat_IsValid verifies output format validation.
func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{OutputFormatText, true},
		{OutputFormatJSON, true},
		{"invalid", false},
		{"", false},
		{"JSON", false}, // Case sensitive
	}

	for _, tt := range tests {
		if got := tt.format.IsValid(); got != tt.valid {
			t.Errorf("OutputFormat(%q).IsValid() = %v, want %v", tt.format, got, tt.valid)
		}
	}
}

// TestLoadConfig_FromFile verifies YAML file loading via STITCH_CONFIG_DIR.
func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("output_format: json\nlog_level: debug\ndebug: true\n")
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), content, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STITCH_CONFIG_DIR", dir)
	t.Setenv("STITCH_OUTPUT_FORMAT", "")
	t.Setenv("STITCH_LOG_LEVEL", "")
	t.Setenv("STITCH_DEBUG", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputFormat != OutputFormatJSON {
		t.Errorf("OutputFormat = %v, want json", cfg.OutputFormat)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

// TestLoadConfig_EnvOverridesFile verifies environment variable precedence.
func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("output_format: json\nlog_level: debug\n")
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), content, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STITCH_CONFIG_DIR", dir)
	t.Setenv("STITCH_OUTPUT_FORMAT", "text")
	t.Setenv("STITCH_LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputFormat != OutputFormatText {
		t.Errorf("OutputFormat = %v, want text (env override)", cfg.OutputFormat)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn (env override)", cfg.LogLevel)
	}
}

// TestLoadConfig_MissingFileUsesDefaults verifies defaults when no config file exists.
func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STITCH_CONFIG_DIR", t.TempDir())
	t.Setenv("STITCH_OUTPUT_FORMAT", "")
	t.Setenv("STITCH_LOG_LEVEL", "")
	t.Setenv("STITCH_DEBUG", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputFormat != DefaultOutputFormat {
		t.Errorf("OutputFormat = %v, want default", cfg.OutputFormat)
	}
}

// TestValidate_RejectsBadValues verifies validation failures.
func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := &CLIConfig{OutputFormat: "xml", LogLevel: "info"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted invalid output format")
	}

	cfg = &CLIConfig{OutputFormat: OutputFormatText, LogLevel: "loud"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted invalid log level")
	}
}
