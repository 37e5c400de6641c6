package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"stratosfear/internal/terminal"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for a mission-control session
type Config struct {
	FuelPool       int
	DBPath         string
	BatchSize      int
	BatchTimeoutMS int
	Log            LogConfig
	Display        DisplayConfig
	Roster         RosterConfig
	Passengers     []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// DisplayConfig holds terminal presentation settings
type DisplayConfig struct {
	Profile string
	Color   string
}

// RosterConfig points at optional CSV files replacing the built-in roster
type RosterConfig struct {
	CrewCSV     string
	FleetCSV    string
	MissionsCSV string
}

// flag name -> config key
var flagKeys = map[string]string{
	"fuel-pool": "fuel_pool",
	"db":        "db_path",
	"profile":   "display.profile",
	"color":     "display.color",
	"log-level": "log.level",
}

// Load loads configuration from defaults, the config file, environment
// variables and finally any flags set on the command line. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("fuel_pool", 25000)
	v.SetDefault("db_path", ":memory:")
	v.SetDefault("batch_size", 50)
	v.SetDefault("batch_timeout_ms", 250)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("display.profile", terminal.DefaultProfile)
	v.SetDefault("display.color", terminal.ColorAuto)
	v.SetDefault("roster.crew_csv", "")
	v.SetDefault("roster.fleet_csv", "")
	v.SetDefault("roster.missions_csv", "")
	v.SetDefault("passengers", []string{})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/stratosfear")
	v.AddConfigPath(".")

	if configPath := os.Getenv("STRATOSFEAR_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}
	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file: defaults + env + flags
	}

	v.SetEnvPrefix("STRATOSFEAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		FuelPool:       v.GetInt("fuel_pool"),
		DBPath:         v.GetString("db_path"),
		BatchSize:      v.GetInt("batch_size"),
		BatchTimeoutMS: v.GetInt("batch_timeout_ms"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Display: DisplayConfig{
			Profile: strings.ToLower(v.GetString("display.profile")),
			Color:   strings.ToLower(v.GetString("display.color")),
		},
		Roster: RosterConfig{
			CrewCSV:     v.GetString("roster.crew_csv"),
			FleetCSV:    v.GetString("roster.fleet_csv"),
			MissionsCSV: v.GetString("roster.missions_csv"),
		},
		Passengers: v.GetStringSlice("passengers"),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.FuelPool < 0 {
		return fmt.Errorf("fuel_pool must not be negative")
	}

	if cfg.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if cfg.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be greater than 0")
	}

	if cfg.BatchTimeoutMS <= 0 {
		return fmt.Errorf("batch_timeout_ms must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	if _, ok := terminal.LookupProfile(cfg.Display.Profile); !ok {
		return fmt.Errorf("invalid display profile: %s (must be one of %s)",
			cfg.Display.Profile, strings.Join(terminal.ProfileNames(), ", "))
	}

	switch cfg.Display.Color {
	case terminal.ColorAuto, terminal.ColorAlways, terminal.ColorNever:
	default:
		return fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", cfg.Display.Color)
	}

	return nil
}
