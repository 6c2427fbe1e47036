package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// StoreDay defines one weekday's opening hours
type StoreDay struct {
	Open   string `yaml:"open" validate:"required_unless=Closed true"`
	Close  string `yaml:"close" validate:"required_unless=Closed true"`
	Closed bool   `yaml:"closed"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// FullTimeHours is the weekly baseline a 100% worker targets
	FullTimeHours float64 `yaml:"fullTimeHours" validate:"gt=0"`

	// HoursTolerance is the on-target band as a fraction of target hours
	HoursTolerance float64 `yaml:"hoursTolerance" validate:"gte=0,lt=1"`

	// MaxOvertimeHours is the hard weekly ceiling over target
	MaxOvertimeHours float64 `yaml:"maxOvertimeHours" validate:"gte=0"`

	// Peak coverage window and floor for the gap analysis
	PeakStart       string `yaml:"peakStart" validate:"required"`
	PeakEnd         string `yaml:"peakEnd" validate:"required"`
	PeakMinCoverage int    `yaml:"peakMinCoverage" validate:"min=1"`

	// MinGapMinutes is the shortest break reported between a worker's
	// same-day shifts
	MinGapMinutes int `yaml:"minGapMinutes" validate:"min=1"`

	// StoreHours is the weekly opening table, keyed by lowercase weekday
	StoreHours map[string]StoreDay `yaml:"storeHours" validate:"required,dive"`

	// ClosureRules are RRULE strings for whole-day store closures
	// (bank holidays and the like); matching days emit no shifts
	ClosureRules []string `yaml:"closureRules,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns a config with the stock engine and analysis thresholds;
// callers still have to provide store hours and a database URL
func Default() *Config {
	return &Config{
		FullTimeHours:    scheduler.DefaultFullTimeHours,
		HoursTolerance:   scheduler.DefaultHoursTolerance,
		MaxOvertimeHours: scheduler.DefaultMaxOvertimeHours,
		PeakStart:        scheduler.DefaultPeakStart,
		PeakEnd:          scheduler.DefaultPeakEnd,
		PeakMinCoverage:  scheduler.PeakMinCoverage,
		MinGapMinutes:    15,
	}
}

// Load loads and validates the configuration from storeshift.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct, the store-hours table, and
// the closure rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for name, day := range cfg.StoreHours {
		if _, err := clock.ParseWeekday(name); err != nil {
			return fmt.Errorf("invalid storeHours key: %w", err)
		}
		if day.Closed {
			continue
		}
		if _, err := clock.HoursBetween(day.Open, day.Close); err != nil {
			return fmt.Errorf("invalid storeHours for %s: %w", name, err)
		}
	}

	// Validate rrule syntax for each closure rule
	for i, rule := range cfg.ClosureRules {
		if _, err := rrule.StrToRRuleSet(rule); err != nil {
			return fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
	}

	return nil
}

// WeekHours converts the store-hours table into the scheduler's form
func (c *Config) WeekHours() (scheduler.WeekHours, error) {
	week := make(scheduler.WeekHours, len(c.StoreHours))
	for name, day := range c.StoreHours {
		weekday, err := clock.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		week[weekday] = scheduler.DayHours{Open: day.Open, Close: day.Close, Closed: day.Closed}
	}
	return week, nil
}

// ClosureDatesForWeek expands the closure rules into the set of dates that
// fall inside the 7-day week starting at weekStart
func (c *Config) ClosureDatesForWeek(weekStart time.Time) (map[string]bool, error) {
	closed := make(map[string]bool)
	weekEnd := weekStart.AddDate(0, 0, 6)

	for i, rule := range c.ClosureRules {
		set, err := rrule.StrToRRuleSet(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
		for _, occurrence := range set.Between(weekStart, weekEnd, true) {
			closed[clock.FormatDate(occurrence)] = true
		}
	}

	return closed, nil
}

// CoverageConfig builds the gap-analysis thresholds from the config
func (c *Config) CoverageConfig() scheduler.CoverageConfig {
	return scheduler.CoverageConfig{
		MinGapHours:     float64(c.MinGapMinutes) / 60,
		PeakStart:       c.PeakStart,
		PeakEnd:         c.PeakEnd,
		PeakMinCoverage: c.PeakMinCoverage,
	}
}

// Tuning builds the engine tuning from the config
func (c *Config) Tuning() scheduler.Tuning {
	return scheduler.Tuning{
		FullTimeHours:    c.FullTimeHours,
		MaxOvertimeHours: c.MaxOvertimeHours,
	}
}

// findConfigFile searches for storeshift.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "storeshift.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
