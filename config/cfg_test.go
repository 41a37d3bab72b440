package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
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
	if cfg.JSON.AllowComments {
		t.Error("Expected comments to be rejected by default")
	}
	if cfg.JSON.Indent != "" {
		t.Errorf("Default indent = %q, want compact output", cfg.JSON.Indent)
	}
	if cfg.Logging.FileLogger.Level != LogLevelNone {
		t.Errorf("Default file log level = %q, want %q", cfg.Logging.FileLogger.Level, LogLevelNone)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
json:
  allow_comments: true
  indent: "  "
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+filepath.Join(t.TempDir(), "test.log")+`
    mode: append
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.JSON.AllowComments {
		t.Error("Expected AllowComments to be true")
	}
	if cfg.JSON.Indent != "  " {
		t.Errorf("Indent = %q, want two spaces", cfg.JSON.Indent)
	}
	if cfg.Logging.ConsoleLogger.Level != LogLevelDebug {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Mode != LogModeAppend {
		t.Errorf("File mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `version: 1
json:
  indent: "\t"
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.JSON.Indent != "\t" {
		t.Errorf("Indent = %q, want tab", cfg.JSON.Indent)
	}
	if cfg.Logging.FileLogger.Mode != LogModeOverwrite {
		t.Errorf("File mode = %q, want default overwrite", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: 1
json:
  allow_comments: true
  invalid indent
`)

	_, err := LoadConfiguration(path)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	path := writeConfig(t, `version: 1
unknown_field: value
`)

	_, err := LoadConfiguration(path)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "version", content: "version: 2\n"},
		{name: "log level", content: "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{name: "log mode", content: "version: 1\nlogging:\n  file:\n    mode: rotate\n"},
		{name: "indent too long", content: "version: 1\njson:\n  indent: \"" + strings.Repeat(" ", 9) + "\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
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

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		JSON:    JSONConfig{AllowComments: true, Indent: "  "},
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: LogLevelNormal},
			FileLogger:    LoggerConfig{Level: LogLevelNone, Destination: filepath.Join(t.TempDir(), "objkit.log")},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"version: 1", "allow_comments: true", "level: normal"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q:\n%s", want, out)
		}
	}

	loaded, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("dumped config does not load back: %v", err)
	}
	if loaded.JSON != cfg.JSON {
		t.Errorf("JSON section = %+v, want %+v", loaded.JSON, cfg.JSON)
	}
}

func TestLoggingConfig_Prepare(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: LogLevelNone},
		FileLogger:    LoggerConfig{Level: LogLevelDebug, Destination: dest, Mode: LogModeOverwrite},
	}

	log, err := conf.Prepare(false)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hello from test")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("unable to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file does not contain message: %q", data)
	}
}
