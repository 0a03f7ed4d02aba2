package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"cssed/color"
	"cssed/vocab"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Color.OutOfRange != color.PolicyClamp {
		t.Errorf("Default out_of_range = %v, want clamp", cfg.Color.OutOfRange)
	}
	if !cfg.Compact.CheckPlaceholders {
		t.Error("Expected placeholder check to be on by default")
	}
	if cfg.Vocabulary.Path != "" {
		t.Errorf("Default vocabulary path = %q, want empty", cfg.Vocabulary.Path)
	}
	if cfg.Logging.ConsoleLogger.Level != "none" {
		t.Errorf("Console level under test = %q, want none", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	vocabPath := filepath.Join(dir, "vocab.yaml")
	if err := os.WriteFile(vocabPath, []byte(`
tags: [widget]
properties: [glow]
pseudo_selectors: [":shine"]
at_keywords: ["@theme"]
units: [px]
value_keywords: [bright]
color_names: [red]
`), 0644); err != nil {
		t.Fatalf("Failed to write vocabulary file: %v", err)
	}

	path := writeConfig(t, `version: 1
vocabulary:
  path: `+vocabPath+`
color:
  out_of_range: fail
compact:
  check_placeholders: false
logging:
  console:
    level: normal
  file:
    level: debug
    destination: `+filepath.Join(dir, "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Color.OutOfRange != color.PolicyFail {
		t.Errorf("out_of_range = %v, want fail", cfg.Color.OutOfRange)
	}
	if cfg.Compact.CheckPlaceholders {
		t.Error("Expected placeholder check to be off")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File log mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}

	set, err := cfg.Vocabulary.Prepare()
	if err != nil {
		t.Fatalf("Vocabulary.Prepare() error = %v", err)
	}
	if !set.Get(vocab.KindTags).Contains("widget") {
		t.Error("Expected vocabulary from configured file")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ncolor:\n  out_of_range: clamp\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad policy", "version: 1\ncolor:\n  out_of_range: wrap\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := LoadConfiguration(writeConfig(t, "version: 1\ncolor:\n  out_of_range: Clamp\n")); !errors.Is(err, color.ErrInvalidPolicy) {
		t.Errorf("Expected ErrInvalidPolicy, got %v", err)
	}

	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// options are opaque, just test that we can pass them
	}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if strings.Contains(string(data), "{{") {
		t.Error("Prepare() left template actions unexpanded")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Color.OutOfRange = color.PolicyFail

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	loaded, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if !strings.Contains(string(data), "out_of_range: fail") {
		t.Errorf("Dump() does not name policy: %s", data)
	}
	if loaded.Color.OutOfRange != color.PolicyFail || loaded.Version != cfg.Version {
		t.Errorf("Dump/load mismatch: got %+v", loaded)
	}
}

func TestVocabularyConfig_Default(t *testing.T) {
	var conf VocabularyConfig
	set, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if set != vocab.Default() {
		t.Error("Expected built-in vocabulary for empty path")
	}

	conf.Path = filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := conf.Prepare(); err == nil {
		t.Error("Expected error for absent vocabulary file")
	}
}

func TestLoggingConfig_Prepare(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: filepath.Join(dir, "test.log"), Mode: "overwrite"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hello from test")
	_ = log.Sync()

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("Unable to read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log does not contain message: %q", data)
	}
}
