// File: config_logging_test.go
// Title: Configuration and Logging Integration Tests
// Description: Tests the ambient pipeline the CLI assembles on every
//              run: load a configuration file, build a logger from its
//              values, and route structured errors through it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial implementation of integration tests

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/msto63/textcore/core/config"
	tcerror "github.com/msto63/textcore/core/error"
	tcerrors "github.com/msto63/textcore/core/errors"
	"github.com/msto63/textcore/core/log"
	"github.com/msto63/textcore/strx"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textcore.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// TestConfigDrivesLogger builds a logger from loaded configuration the
// way the CLI root command does.
func TestConfigDrivesLogger(t *testing.T) {
	path := writeConfig(t, "[logging]\nlevel = \"debug\"\nformat = \"json\"\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	level, err := log.ParseLevel(cfg.GetString("logging.level"))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	format, err := log.ParseFormat(cfg.GetString("logging.format"))
	if err != nil {
		t.Fatalf("ParseFormat() error = %v", err)
	}

	var out bytes.Buffer
	runID := uuid.NewString()
	logger := log.New().
		WithLevel(level).
		WithFormat(format).
		WithOutput(&out).
		WithName("textcore").
		WithCorrelationID(runID)

	logger.Debug("pipeline ready", log.String("config", cfg.FilePath()))

	var entry map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, out.String())
	}
	if got := entry["level"]; got != "DEBUG" {
		t.Errorf("level = %v; want DEBUG", got)
	}
	if got := entry["correlation_id"]; got != runID {
		t.Errorf("correlation_id = %v; want %v", got, runID)
	}
	if got := entry["config"]; got != path {
		t.Errorf("config field = %v; want %v", got, path)
	}
}

// TestErrorSeverityPicksLogLevel routes structured errors through
// LogError and checks the severity-to-level mapping end to end.
func TestErrorSeverityPicksLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       *tcerror.Error
		wantLevel string
	}{
		{
			"validation error logs as info",
			tcerrors.ValidationFailed(tcerrors.ModuleStrx, "pattern", "", "must not be empty"),
			"INFO",
		},
		{
			"invalid input logs as warn",
			tcerrors.InvalidInput(tcerrors.ModuleUtf8x, "decode", []byte{0xff}, "valid UTF-8 lead byte"),
			"WARN",
		},
		{
			"operation failure logs as error",
			tcerrors.OperationFailed(tcerrors.ModuleConfig, "load", os.ErrPermission),
			"ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			logger := log.New().
				WithLevel(log.LevelTrace).
				WithFormat(log.FormatJSON).
				WithOutput(&out)

			logger.LogError(tt.err)

			var entry map[string]interface{}
			if err := json.Unmarshal(out.Bytes(), &entry); err != nil {
				t.Fatalf("log output is not JSON: %v", err)
			}
			if got := entry["level"]; got != tt.wantLevel {
				t.Errorf("level = %v; want %v", got, tt.wantLevel)
			}
			if _, ok := entry["error_code"]; !ok {
				t.Error("entry is missing error_code field")
			}
		})
	}
}

// TestConfigTextThroughSubstrate feeds configuration values through the
// string substrate, the combination the CLI commands rely on.
func TestConfigTextThroughSubstrate(t *testing.T) {
	path := writeConfig(t, "prefix = \"  srv-\"\nhosts = [\"alpha\", \"beta\"]\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	prefix := strx.NewString(cfg.GetString("prefix")).Trim().String()
	if prefix != "srv-" {
		t.Fatalf("trimmed prefix = %q; want %q", prefix, "srv-")
	}

	hosts := cfg.GetStringSlice("hosts")
	names := make([]string, len(hosts))
	for i, h := range hosts {
		names[i] = strx.NewString(prefix).Append(h).String()
	}

	joined := strx.JoinStrings(names, ",", 0)
	if got := joined.String(); got != "srv-alpha,srv-beta" {
		t.Errorf("joined hosts = %q; want %q", got, "srv-alpha,srv-beta")
	}

	parts := joined.Split(",")
	if len(parts) != 2 || !parts[0].EqualString("srv-alpha") {
		t.Errorf("Split() = %v; want [srv-alpha srv-beta]", parts)
	}
}

// TestModuleErrorIntrospection checks that errors raised anywhere in
// the library identify their module and operation consistently.
func TestModuleErrorIntrospection(t *testing.T) {
	err := tcerrors.StrxIndexOutOfRange("At", 9, 3)

	if !tcerrors.IsModuleError(err, tcerrors.ModuleStrx) {
		t.Error("IsModuleError(strx) = false; want true")
	}
	if got := tcerrors.GetErrorModule(err); got != tcerrors.ModuleStrx {
		t.Errorf("GetErrorModule() = %q; want %q", got, tcerrors.ModuleStrx)
	}
	if !tcerror.HasCode(err, tcerror.CodeOutOfRange) {
		t.Errorf("code = %v; want %v", tcerror.GetCode(err), tcerror.CodeOutOfRange)
	}
}
