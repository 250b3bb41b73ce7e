package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/address-book/internal/contacts"
)

// Config represents application configuration
type Config struct {
	Book   BookConfig   `mapstructure:"book"`
	Daemon DaemonConfig `mapstructure:"daemon"`
}

// BookConfig represents address book configuration
type BookConfig struct {
	SeedFile               string `mapstructure:"seed_file"`                // YAML list of contacts loaded at start-up
	AllowBirthdayOverwrite bool   `mapstructure:"allow_birthday_overwrite"` // false keeps birthdays write-once
	YearWraparound         bool   `mapstructure:"year_wraparound"`          // list early-January birthdays in late December
}

// DaemonConfig represents daemon mode configuration
type DaemonConfig struct {
	DailyTime  string `mapstructure:"daily_time"` // Time to post the digest (HH:MM, local time)
	LogFile    string `mapstructure:"log_file"`
	LogLevel   string `mapstructure:"log_level"`
	SystemTray bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Daemon: DaemonConfig{
			DailyTime: "09:00",
			LogLevel:  "info",
		},
	}
}

// Load loads configuration from file on top of Default(). An empty path
// searches ./config.yaml and $HOME/.address-book/config.yaml. A missing
// file is tolerated unless the path was given explicitly.
func Load(configPath string, explicit bool) (*Config, error) {
	v := viper.New()

	// Every key needs a default so that AutomaticEnv can override it
	defaults := Default()
	v.SetDefault("book.seed_file", defaults.Book.SeedFile)
	v.SetDefault("book.allow_birthday_overwrite", defaults.Book.AllowBirthdayOverwrite)
	v.SetDefault("book.year_wraparound", defaults.Book.YearWraparound)
	v.SetDefault("daemon.daily_time", defaults.Daemon.DailyTime)
	v.SetDefault("daemon.log_file", defaults.Daemon.LogFile)
	v.SetDefault("daemon.log_level", defaults.Daemon.LogLevel)
	v.SetDefault("daemon.system_tray", defaults.Daemon.SystemTray)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.address-book")
	}

	// Read environment variables, e.g. ADDRESS_BOOK_DAEMON_LOG_LEVEL
	v.SetEnvPrefix("address_book")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, _, err := parseDailyTime(c.Daemon.DailyTime); err != nil {
		return fmt.Errorf("daemon.daily_time: %w", err)
	}

	switch strings.ToLower(c.Daemon.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("daemon.log_level must be one of debug, info, warn, error, got '%s'", c.Daemon.LogLevel)
	}

	return nil
}

// BirthdayPolicy maps allow_birthday_overwrite to a record policy
func (c *BookConfig) BirthdayPolicy() contacts.BirthdayPolicy {
	if c.AllowBirthdayOverwrite {
		return contacts.Overwrite
	}
	return contacts.WriteOnce
}

// GetDailyTime returns the configured daily digest time.
// Returns hour and minute (0-23, 0-59). Default: 09:00
func (c *DaemonConfig) GetDailyTime() (hour, minute int) {
	h, m, err := parseDailyTime(c.DailyTime)
	if err != nil {
		return 9, 0
	}
	return h, m
}

func parseDailyTime(s string) (hour, minute int, err error) {
	if s == "" {
		return 9, 0, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("expected HH:MM, got '%s'", s)
	}
	return t.Hour(), t.Minute(), nil
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Book.SeedFile = os.ExpandEnv(c.Book.SeedFile)
	c.Daemon.LogFile = os.ExpandEnv(c.Daemon.LogFile)
}
