// Package config loads the application configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Timezone     string `yaml:"timezone"`
	DBPath       string `yaml:"db_path"`
	TemplatePath string `yaml:"template_path"` // empty means the built-in flyer template
	HolidayPath  string `yaml:"holiday_path"`
	DailyTime    string `yaml:"daily_time"` // HH:MM, daemon mode's daily check
	LogLevel     string `yaml:"log_level"`

	Drive DriveConfig `yaml:"drive"`
	Slack SlackConfig `yaml:"slack"`
}

// DriveConfig identifies the Drive folders and spreadsheet the workflow
// reads and writes.
type DriveConfig struct {
	PDFFolderID    string `yaml:"pdf_folder_id"`
	VisionFolderID string `yaml:"vision_folder_id"` // folder holding the OCR JSON output
	SheetFolderID  string `yaml:"sheet_folder_id"`
	SpreadsheetID  string `yaml:"spreadsheet_id"`
	UserRange      string `yaml:"user_range"`
}

// SlackConfig holds the notification credentials and targets.
type SlackConfig struct {
	Token     string `yaml:"token"`
	ChannelID string `yaml:"channel_id"`
	AppURL    string `yaml:"app_url"`
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		Timezone:    "Asia/Tokyo",
		DBPath:      "./menugrid.db",
		HolidayPath: "./holidays.yaml",
		DailyTime:   "08:00",
		LogLevel:    "info",
		Drive: DriveConfig{
			UserRange: "App: Logins!B1:B10",
		},
	}
}

// Load reads a YAML config file and returns a validated Config.
// The environment variable MENUGRID_CONFIG overrides the file path.
func Load(path string) (Config, error) {
	if envPath := os.Getenv("MENUGRID_CONFIG"); envPath != "" {
		path = envPath
	}

	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the config for values that would fail at runtime.
func (c Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.HolidayPath == "" {
		return fmt.Errorf("holiday_path must not be empty")
	}
	if len(c.DailyTime) != 5 || c.DailyTime[2] != ':' {
		return fmt.Errorf("invalid daily_time %q: must be HH:MM", c.DailyTime)
	}
	return nil
}
