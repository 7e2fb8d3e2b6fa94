// Package config loads jqview's user settings, grounded on the
// teacher's internal/config/config.go: a viper-backed implementation
// behind a Config interface, merging a settings file with
// JQVIEW_-prefixed environment variables. Unlike the teacher's
// multi-scope project/registry/settings config, jqview has a single
// flat settings file — there's no per-project configuration to layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the public configuration contract, grounded on the
// teacher's Config interface boundary (an interface rather than a
// struct, so callers can't reach past accessor methods into the
// backing viper instance).
type Config interface {
	QueryDebounce() time.Duration
	AIDebounce() time.Duration
	AIProvider() string
	AIAPIKey() string
	AIModel() string
	AIBaseURL() string
	AIWordLimit() int
	ClipboardBackend() string
	HistoryFile() string
	SnippetsFile() string
	AutocompleteSampleSize() int
	AIConfig() (AIConfig, error)
}

// AIConfig is the decoded "ai" settings sub-map, used where a caller
// wants the whole advisor configuration at once instead of one getter
// per field (internal/app's Model construction).
type AIConfig struct {
	Provider  string `mapstructure:"provider"`
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`
	WordLimit int    `mapstructure:"word_limit"`
}

type configImpl struct {
	v *viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("query.debounce_ms", 100)
	v.SetDefault("ai.debounce_ms", 400)
	v.SetDefault("ai.provider", "anthropic")
	v.SetDefault("ai.word_limit", 200)
	v.SetDefault("clipboard.backend", "osc52")
	v.SetDefault("autocomplete.sample_size", 10)

	dir := userConfigDir()
	v.SetDefault("history.file", filepath.Join(dir, "jqview", "history.yaml"))
	v.SetDefault("snippets.file", filepath.Join(dir, "jqview", "snippets.yaml"))
}

func userConfigDir() string {
	if runtime.GOOS == "windows" {
		if v := os.Getenv("AppData"); v != "" {
			return v
		}
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

// LogsDir returns the directory jqview writes its rotated log file to,
// grounded on the teacher's internal/config.LogsDir().
func LogsDir() (string, error) {
	return filepath.Join(userConfigDir(), "jqview", "logs"), nil
}

// SettingsFile returns the path config.New() reads, exposed so "config
// check" can report it without duplicating the join.
func SettingsFile() string {
	return filepath.Join(userConfigDir(), "jqview", "settings.yaml")
}

func newViperConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("JQVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

// New loads the user settings file (if present) merged with
// JQVIEW_-prefixed environment variables and built-in defaults.
func New() (Config, error) {
	v := newViperConfig()

	path := filepath.Join(userConfigDir(), "jqview", "settings.yaml")
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	return &configImpl{v: v}, nil
}

// NewBlank returns a Config seeded only with defaults and JQVIEW_
// environment variables, without reading the settings file (used by
// tests).
func NewBlank() Config {
	return &configImpl{v: newViperConfig()}
}

func (c *configImpl) QueryDebounce() time.Duration {
	return time.Duration(c.v.GetInt("query.debounce_ms")) * time.Millisecond
}

func (c *configImpl) AIDebounce() time.Duration {
	return time.Duration(c.v.GetInt("ai.debounce_ms")) * time.Millisecond
}

func (c *configImpl) AIProvider() string       { return c.v.GetString("ai.provider") }
func (c *configImpl) AIAPIKey() string         { return c.v.GetString("ai.api_key") }
func (c *configImpl) AIModel() string          { return c.v.GetString("ai.model") }
func (c *configImpl) AIBaseURL() string        { return c.v.GetString("ai.base_url") }
func (c *configImpl) AIWordLimit() int         { return c.v.GetInt("ai.word_limit") }
func (c *configImpl) ClipboardBackend() string { return c.v.GetString("clipboard.backend") }
func (c *configImpl) HistoryFile() string      { return c.v.GetString("history.file") }
func (c *configImpl) SnippetsFile() string     { return c.v.GetString("snippets.file") }
func (c *configImpl) AutocompleteSampleSize() int {
	return c.v.GetInt("autocomplete.sample_size")
}

// AIConfig decodes the "ai" settings sub-map (a plain
// map[string]interface{} from viper) into AIConfig via
// mapstructure, rather than reaching through five separate getters.
func (c *configImpl) AIConfig() (AIConfig, error) {
	var cfg AIConfig
	if err := mapstructure.Decode(c.v.GetStringMap("ai"), &cfg); err != nil {
		return AIConfig{}, fmt.Errorf("decoding ai config: %w", err)
	}
	return cfg, nil
}
