// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads TOML and YAML configuration files
//              with defaults, environment overrides, and dot-notation
//              access for the textcore CLI and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial package documentation

// Package config provides configuration loading for textcore.
//
// Configuration is read once from a TOML or YAML file, optionally
// layered over a defaults map, and accessed through dot-notation keys:
//
//	cfg, err := config.LoadWithOptions("textcore.toml", config.LoadOptions{
//	    EnvPrefix: "TEXTCORE",
//	    Defaults: map[string]interface{}{
//	        "logging": map[string]interface{}{"level": "info"},
//	    },
//	})
//	level := cfg.GetString("logging.level")
//
// When an environment prefix is set, a variable such as
// TEXTCORE_LOGGING_LEVEL overrides the corresponding file value. There
// is no file watching; the package targets one-shot CLI runs where the
// configuration cannot change under a running process.
//
// Load failures are reported as structured core/error values carrying
// the CONFIG_ERROR, MISSING_CONFIG, or INVALID_CONFIG codes.
package config
