// Package config loads CLI settings from defaults, an optional config file and
// WIDGETDSL_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
)

// EnvPrefix is prepended to environment overrides, e.g. WIDGETDSL_CACHE_SIZE.
const EnvPrefix = "WIDGETDSL"

// Config holds CLI configuration.
type Config struct {
	Renderer string        `mapstructure:"renderer"`
	Ordering string        `mapstructure:"ordering"`
	Cache    CacheConfig   `mapstructure:"cache"`
	Grammar  GrammarConfig `mapstructure:"grammar"`
	Theme    ThemeConfig   `mapstructure:"theme"`
	HTML     HTMLConfig    `mapstructure:"html"`
}

// CacheConfig sizes the compile memoization cache. Zero disables it.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// GrammarConfig lists extra grammar definition files layered over the
// builtin kinds.
type GrammarConfig struct {
	Files []string `mapstructure:"files"`
}

// ThemeConfig selects a theme from the listed manifest files.
type ThemeConfig struct {
	Name    string   `mapstructure:"name"`
	Variant string   `mapstructure:"variant"`
	Files   []string `mapstructure:"files"`
}

// HTMLConfig tunes the HTML preview renderer.
type HTMLConfig struct {
	Sanitize bool `mapstructure:"sanitize"`
}

// CompilerOrdering parses the configured ordering.
func (c Config) CompilerOrdering() (compiler.Ordering, error) {
	return compiler.ParseOrdering(c.Ordering)
}

// Load reads configuration. An explicit path must exist; without one the
// loader looks for widgetdsl.{yaml,json,toml} in the working directory and
// in ~/.config/widgetdsl, and silently uses defaults when none is found.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("renderer", "json")
	v.SetDefault("ordering", string(compiler.OrderGrouped))
	v.SetDefault("cache.size", 0)
	v.SetDefault("grammar.files", []string{})
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.files", []string{})
	v.SetDefault("html.sanitize", true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("widgetdsl")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "widgetdsl"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if _, err := c.CompilerOrdering(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if c.Cache.Size < 0 {
		return Config{}, fmt.Errorf("config: cache.size must be >= 0, got %d", c.Cache.Size)
	}
	return c, nil
}
