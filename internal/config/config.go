// Package config holds the quill command's configuration. Values are
// layered by viper: built-in defaults, then the YAML config file, then
// QUILL_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type SchedulerConfig struct {
	AutoRegister bool `mapstructure:"auto_register" yaml:"auto_register"`
	TPS          int  `mapstructure:"tps" yaml:"tps"`
	Debug        bool `mapstructure:"debug" yaml:"debug"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Source bool   `mapstructure:"source" yaml:"source"`
	File   string `mapstructure:"file" yaml:"file"`
}

// Config is the resolved configuration.
type Config struct {
	Scheduler SchedulerConfig `mapstructure:"scheduler" yaml:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Scheduler: SchedulerConfig{AutoRegister: true, TPS: 60},
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}

// EnvPrefix is prepended to a key, with '.' replaced by '_', to name its
// environment override: scheduler.tps is QUILL_SCHEDULER_TPS.
const EnvPrefix = "QUILL"

// SetDefaults seeds v with every key of Defaults. Keys viper has no default
// for are invisible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("scheduler.auto_register", d.Scheduler.AutoRegister)
	v.SetDefault("scheduler.tps", d.Scheduler.TPS)
	v.SetDefault("scheduler.debug", d.Scheduler.Debug)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.source", d.Logging.Source)
	v.SetDefault("logging.file", d.Logging.File)
}

// Load resolves the configuration held by v. Flags bound to v beforehand
// take precedence over the environment, which takes precedence over the
// file at path. A missing file is not an error; an empty path skips the
// file.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("quill: read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("quill: decode config: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Scheduler.TPS <= 0 {
		return fmt.Errorf("quill: scheduler.tps must be positive, got %d", c.Scheduler.TPS)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("quill: logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// Save writes cfg as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("quill: create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("quill: write config: %w", err)
	}
	return nil
}
