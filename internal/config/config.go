package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/username/contact-book/internal/storage"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "CONTACT_BOOK"

// Config represents application configuration
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Reminder  ReminderConfig  `mapstructure:"reminder"`
	Log       LogConfig       `mapstructure:"log"`
}

// StorageConfig represents address book persistence
type StorageConfig struct {
	File string `mapstructure:"file"` // .json, .yaml or .yml
}

// BirthdaysConfig represents the upcoming-birthdays query
type BirthdaysConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// ReminderConfig represents the daily reminder
type ReminderConfig struct {
	DailyTime string `mapstructure:"daily_time"` // HH:MM, local time
}

// LogConfig represents logging
type LogConfig struct {
	File  string `mapstructure:"file"` // empty: log to stderr
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.file", "addressbook.json")
	v.SetDefault("birthdays.window_days", 7)
	v.SetDefault("reminder.daily_time", "09:00")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
}

// Load loads configuration from file, .env and CONTACT_BOOK_* environment variables.
// With an empty configPath a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-book")
		v.AddConfigPath("/etc/contact-book")
	}

	// Read environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.File == "" {
		return fmt.Errorf("storage.file is required")
	}
	if _, err := storage.FormatFromPath(c.Storage.File); err != nil {
		return fmt.Errorf("storage.file: %w", err)
	}

	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("birthdays.window_days must not be negative")
	}

	if c.Reminder.DailyTime != "" {
		if _, _, err := parseDailyTime(c.Reminder.DailyTime); err != nil {
			return fmt.Errorf("reminder.daily_time: %w", err)
		}
	}

	if c.Log.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}

	return nil
}

// GetDailyTime returns the configured reminder time.
// Returns hour and minute (0-23, 0-59). Default: 09:00
func (c *ReminderConfig) GetDailyTime() (hour, minute int) {
	h, m, err := parseDailyTime(c.DailyTime)
	if err != nil {
		return 9, 0
	}
	return h, m
}

// GetLevel returns the log level, info when unset or invalid
func (c *LogConfig) GetLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func parseDailyTime(s string) (hour, minute int, err error) {
	var h, m int
	var rest string
	n, _ := fmt.Sscanf(s, "%d:%d%s", &h, &m, &rest)
	if n != 2 || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return h, m, nil
}
