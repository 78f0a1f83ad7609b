// Package config loads cubesolve settings from defaults, an optional TOML
// file and CUBESOLVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubesolve"
)

// Engine names accepted in engine.name.
const (
	EngineAuto     = "auto"
	EngineSearch   = "search"
	EngineKociemba = "kociemba"
)

// Config holds application configuration.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Solve   SolveConfig   `mapstructure:"solve"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// EngineConfig selects and configures the move-search engine.
type EngineConfig struct {
	Name     string   `mapstructure:"name"`
	Path     string   `mapstructure:"path"`
	Args     []string `mapstructure:"args"`
	MaxDepth int      `mapstructure:"max_depth"`
}

// SolveConfig holds gateway settings.
type SolveConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Verify  bool          `mapstructure:"verify"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Style string `mapstructure:"style"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultPath returns the config file used when neither an explicit path
// nor CUBESOLVE_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "cubesolve", "config.toml")
}

// Load reads configuration. path, when set, must exist; otherwise
// CUBESOLVE_CONFIG or the default location is tried and a missing file is
// not an error. Env var overrides use prefix CUBESOLVE_, with "." in keys
// replaced by "_" (CUBESOLVE_SOLVE_TIMEOUT).
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("engine.name", EngineAuto)
	v.SetDefault("engine.path", "")
	v.SetDefault("engine.args", []string{})
	v.SetDefault("engine.max_depth", 6)
	v.SetDefault("solve.timeout", 30*time.Second)
	v.SetDefault("solve.verify", true)
	v.SetDefault("display.style", cubesolve.StyleNumbered.String())
	v.SetDefault("log.level", logrus.WarnLevel.String())

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CUBESOLVE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CUBESOLVE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// defaults and env only
		case !explicit && errors.Is(err, os.ErrNotExist):
			// CUBESOLVE_CONFIG pointing nowhere is tolerated like a missing default file
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	switch c.Engine.Name {
	case EngineAuto, EngineSearch, EngineKociemba:
	default:
		return fmt.Errorf("config: unknown engine %q (want %s, %s or %s)",
			c.Engine.Name, EngineAuto, EngineSearch, EngineKociemba)
	}
	if c.Engine.MaxDepth < 0 {
		return fmt.Errorf("config: engine.max_depth must not be negative, got %d", c.Engine.MaxDepth)
	}
	if c.Solve.Timeout < 0 {
		return fmt.Errorf("config: solve.timeout must not be negative, got %s", c.Solve.Timeout)
	}
	if _, err := cubesolve.ParseDisplayStyle(c.Display.Style); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DisplayStyle returns the parsed display style.
func (c Config) DisplayStyle() cubesolve.DisplayStyle {
	style, err := cubesolve.ParseDisplayStyle(c.Display.Style)
	if err != nil {
		return cubesolve.StyleNumbered
	}
	return style
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
