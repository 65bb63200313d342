// Package config loads sessionkit settings from defaults, an optional YAML
// file and SESSIONKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultMaxInputBytes caps pasted session documents.
	DefaultMaxInputBytes = 1 << 20

	// DefaultTitleFormat decorates a parsed title with its day number.
	DefaultTitleFormat = "%d일차 세션: %s"
)

// Config holds the complete application configuration.
type Config struct {
	DBPath        string `mapstructure:"db_path" yaml:"db_path"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat     string `mapstructure:"log_format" yaml:"log_format"` // console, json
	MaxInputBytes int64  `mapstructure:"max_input_bytes" yaml:"max_input_bytes"`
	TitleFormat   string `mapstructure:"title_format" yaml:"title_format"`
}

// DefaultDBPath returns ~/.sessionkit/sessions.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sessionkit", "sessions.db")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBPath:        DefaultDBPath(),
		LogLevel:      "warn",
		LogFormat:     "console",
		MaxInputBytes: DefaultMaxInputBytes,
		TitleFormat:   DefaultTitleFormat,
	}
}

// Load reads configuration. An explicit configPath must exist; otherwise
// sessionkit.yaml is looked up in the working directory and ~/.sessionkit,
// and a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SESSIONKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("db_path", "SESSIONKIT_DB", "SESSIONKIT_DB_PATH")

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("sessionkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.sessionkit")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("max_input_bytes", d.MaxInputBytes)
	v.SetDefault("title_format", d.TitleFormat)
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("config: db_path is required")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: log_format must be console or json, got %q", c.LogFormat)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("config: max_input_bytes must be positive, got %d", c.MaxInputBytes)
	}
	if err := CheckTitleFormat(c.TitleFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// CheckTitleFormat reports whether format renders both a day number and a
// title without fmt error markers.
func CheckTitleFormat(format string) error {
	out := fmt.Sprintf(format, 7, "\x00")
	if strings.Contains(out, "%!") || !strings.Contains(out, "7") || !strings.Contains(out, "\x00") {
		return fmt.Errorf("title_format needs a %%d day verb followed by a %%s title verb, got %q", format)
	}
	return nil
}
