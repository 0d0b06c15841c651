// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, format detection, defaults merging,
//              environment overrides, and dot-notation access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tcerror "github.com/msto63/textcore/core/error"
)

const tomlContent = `
title = "textcore"
retries = 3
ratio = 0.75
enabled = true
timeout = "1500ms"
tags = ["alpha", "beta"]

[logging]
level = "debug"
format = "json"
`

const yamlContent = `
title: textcore
retries: 3

logging:
  level: warn
`

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, "app.toml", tomlContent))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Format(); got != FormatTOML {
		t.Errorf("Format() = %v; want %v", got, FormatTOML)
	}
	if got := cfg.GetString("title"); got != "textcore" {
		t.Errorf("GetString(title) = %q; want %q", got, "textcore")
	}
	if got := cfg.GetString("logging.level"); got != "debug" {
		t.Errorf("GetString(logging.level) = %q; want %q", got, "debug")
	}
}

func TestLoadYAMLByExtension(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, "app.yaml", yamlContent))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Format(); got != FormatYAML {
		t.Errorf("Format() = %v; want %v", got, FormatYAML)
	}
	if got := cfg.GetString("logging.level"); got != "warn" {
		t.Errorf("GetString(logging.level) = %q; want %q", got, "warn")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		wantCode tcerror.Code
	}{
		{"empty path", "", tcerror.CodeMissingConfig},
		{"missing file", "/nonexistent/textcore.toml", tcerror.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.filePath)
			if err == nil {
				t.Fatalf("Load(%q) error = nil; want code %s", tt.filePath, tt.wantCode)
			}
			if !tcerror.HasCode(err, tt.wantCode) {
				t.Errorf("Load(%q) code = %v; want %v", tt.filePath, tcerror.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoadInvalidContent(t *testing.T) {
	path := writeTempConfig(t, "bad.toml", "title = [unterminated")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil for malformed TOML; want INVALID_CONFIG")
	}
	if !tcerror.HasCode(err, tcerror.CodeInvalidConfig) {
		t.Errorf("Load() code = %v; want %v", tcerror.GetCode(err), tcerror.CodeInvalidConfig)
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString("level = 4", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if got := cfg.GetInt("level"); got != 4 {
		t.Errorf("GetInt(level) = %d; want 4", got)
	}
	if got := cfg.FilePath(); got != "" {
		t.Errorf("FilePath() = %q; want empty", got)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetInt("retries"); got != 3 {
		t.Errorf("GetInt(retries) = %d; want 3", got)
	}
	if got := cfg.GetFloat("ratio"); got != 0.75 {
		t.Errorf("GetFloat(ratio) = %v; want 0.75", got)
	}
	if got := cfg.GetBool("enabled"); !got {
		t.Error("GetBool(enabled) = false; want true")
	}
	if got := cfg.GetDuration("timeout"); got != 1500*time.Millisecond {
		t.Errorf("GetDuration(timeout) = %v; want 1.5s", got)
	}
	if got := cfg.GetStringSlice("tags"); len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("GetStringSlice(tags) = %v; want [alpha beta]", got)
	}
}

func TestGetterDefaults(t *testing.T) {
	cfg := NewEmpty()

	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q; want %q", got, "fallback")
	}
	if got := cfg.GetInt("missing", 42); got != 42 {
		t.Errorf("GetInt default = %d; want 42", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("GetBool default = false; want true")
	}
	if got := cfg.GetFloat("missing", 2.5); got != 2.5 {
		t.Errorf("GetFloat default = %v; want 2.5", got)
	}
	if got := cfg.GetDuration("missing", time.Second); got != time.Second {
		t.Errorf("GetDuration default = %v; want 1s", got)
	}
	if got := cfg.GetString("missing"); got != "" {
		t.Errorf("GetString without default = %q; want empty", got)
	}
}

func TestDefaultsMerge(t *testing.T) {
	path := writeTempConfig(t, "app.toml", "[logging]\nlevel = \"trace\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"logging": map[string]interface{}{
				"level":  "info",
				"format": "text",
			},
			"color": true,
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	// File value wins over the default.
	if got := cfg.GetString("logging.level"); got != "trace" {
		t.Errorf("GetString(logging.level) = %q; want %q", got, "trace")
	}
	// Sibling default in the same section survives the merge.
	if got := cfg.GetString("logging.format"); got != "text" {
		t.Errorf("GetString(logging.format) = %q; want %q", got, "text")
	}
	if got := cfg.GetBool("color"); !got {
		t.Error("GetBool(color) = false; want default true")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TEXTCORE_LOGGING_LEVEL", "error")

	cfg, err := LoadWithOptions(writeTempConfig(t, "app.toml", tomlContent), LoadOptions{
		EnvPrefix: "textcore",
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("logging.level"); got != "error" {
		t.Errorf("GetString(logging.level) = %q; want env override %q", got, "error")
	}

	// Without a prefix no environment lookup happens.
	plain, err := Load(cfg.FilePath())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := plain.GetString("logging.level"); got != "debug" {
		t.Errorf("GetString(logging.level) = %q; want file value %q", got, "debug")
	}
}

func TestHasKeysSection(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if !cfg.Has("logging.format") {
		t.Error("Has(logging.format) = false; want true")
	}
	if cfg.Has("logging.missing") {
		t.Error("Has(logging.missing) = true; want false")
	}

	keys := cfg.Keys()
	if len(keys) == 0 {
		t.Fatal("Keys() returned no keys")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("Keys() not sorted: %q before %q", keys[i-1], keys[i])
		}
	}

	section := cfg.Section("logging")
	if section == nil {
		t.Fatal("Section(logging) = nil; want map")
	}
	if got, ok := section["format"].(string); !ok || got != "json" {
		t.Errorf("Section(logging)[format] = %v; want %q", section["format"], "json")
	}
	if cfg.Section("title") != nil {
		t.Error("Section(title) != nil for scalar key")
	}
}

func TestSetRuntimeValue(t *testing.T) {
	cfg := NewEmpty()
	cfg.Set("logging.level", "trace")

	if got := cfg.GetString("logging.level"); got != "trace" {
		t.Errorf("GetString after Set = %q; want %q", got, "trace")
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatAuto, "auto"},
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q; want %q", int(tt.format), got, tt.want)
		}
	}
}
