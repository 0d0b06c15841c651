// File: config.go
// Title: Configuration Loading and Access
// Description: Implements the Config type for loading TOML and YAML
//              configuration files with default values, environment
//              variable overrides, and dot-notation key access. Built for
//              one-shot CLI usage; files are read once, never watched.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tcerror "github.com/msto63/textcore/core/error"
)

// Format identifies the configuration file format.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing.
	FormatTOML

	// FormatYAML forces YAML parsing.
	FormatYAML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds parsed configuration data. Values are read-only after
// loading except through Set, which exists for tests and runtime
// overrides and is not persisted.
type Config struct {
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions controls how a configuration file is loaded.
type LoadOptions struct {
	Format    Format                 // file format, FormatAuto detects by extension
	EnvPrefix string                 // prefix for environment overrides, empty disables them
	Defaults  map[string]interface{} // values used where the file is silent
}

// Load reads a configuration file with format auto-detection and no
// environment overrides.
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions reads a configuration file according to options.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, tcerror.New("config file path cannot be empty").
			WithCode(tcerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, tcerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(tcerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, tcerror.Wrap(err, "failed to read config file").
			WithCode(tcerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, tcerror.Wrap(err, "failed to parse config file").
			WithCode(tcerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString parses configuration from an in-memory string.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, tcerror.Wrap(err, "failed to parse config from string").
			WithCode(tcerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// NewEmpty returns a Config with no file backing, useful when a tool
// runs without a configuration file but the rest of the code expects a
// Config value.
func NewEmpty() *Config {
	return &Config{data: make(map[string]interface{}), format: FormatTOML}
}

// detectFormat maps a file extension to a Format. Unknown extensions
// fall back to TOML, the library default.
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, tcerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(tcerror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults layers file data over default values. Nested maps are
// merged key by key so a file can override a single leaf without
// discarding the rest of a defaulted section.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		if sub, ok := v.(map[string]interface{}); ok {
			if defSub, ok := result[k].(map[string]interface{}); ok {
				result[k] = mergeDefaults(sub, defSub)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// GetString returns the string value at key. Environment overrides win
// over file data; a missing key yields the optional default or "".
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns the integer value at key.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if envValue := c.getEnvValue(key); envValue != "" {
		if n, err := strconv.Atoi(envValue); err == nil {
			return n
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns the boolean value at key.
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if envValue := c.getEnvValue(key); envValue != "" {
		if b, err := strconv.ParseBool(envValue); err == nil {
			return b
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns the float64 value at key.
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if envValue := c.getEnvValue(key); envValue != "" {
		if f, err := strconv.ParseFloat(envValue, 64); err == nil {
			return f
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0.0
}

// GetDuration returns the time.Duration value at key. Strings are
// parsed with time.ParseDuration; bare numbers count nanoseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if envValue := c.getEnvValue(key); envValue != "" {
		if d, err := time.ParseDuration(envValue); err == nil {
			return d
		}
	}

	switch v := c.getValue(key).(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns the string slice value at key. A scalar string
// becomes a one-element slice.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	switch v := c.getValue(key).(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// getValue walks dot-notation keys through nested maps.
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// getEnvValue looks up the environment override for a key. Overrides
// are disabled when no prefix is configured.
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a dot-notation key to the environment variable
// spelling: logging.level with prefix TEXTCORE becomes
// TEXTCORE_LOGGING_LEVEL.
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}

// Has reports whether a key exists in the file data or defaults.
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// Keys returns the sorted top-level keys.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Section returns the nested map at key, or nil when the key is absent
// or not a map.
func (c *Config) Section(key string) map[string]interface{} {
	section, _ := c.getValue(key).(map[string]interface{})
	return section
}

// Set writes a runtime-only value, creating intermediate maps as
// needed. Nothing is written back to the file.
func (c *Config) Set(key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// FilePath returns the path the configuration was loaded from, empty
// for string-loaded or empty configs.
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format the configuration was parsed as.
func (c *Config) Format() Format {
	return c.format
}

// String provides a readable one-line summary of the configuration.
func (c *Config) String() string {
	parts := []string{fmt.Sprintf("Config{format: %s", c.format.String())}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
