package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("stratosfear", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.Int("fuel-pool", 0, "")
	fs.String("db", "", "")
	fs.String("profile", "", "")
	fs.String("color", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 25000, cfg.FuelPool)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 250, cfg.BatchTimeoutMS)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "normal", cfg.Display.Profile)
	assert.Equal(t, "auto", cfg.Display.Color)
	assert.Empty(t, cfg.Roster.CrewCSV)
	assert.Empty(t, cfg.Passengers)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
fuel_pool: 12000
db_path: journal.db
display:
  profile: glitch
  color: never
roster:
  fleet_csv: fleet.csv
passengers:
  - Arthur Dent
  - Ford Prefect
`)
	t.Setenv("STRATOSFEAR_CONFIG_PATH", path)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 12000, cfg.FuelPool)
	assert.Equal(t, "journal.db", cfg.DBPath)
	assert.Equal(t, "glitch", cfg.Display.Profile)
	assert.Equal(t, "never", cfg.Display.Color)
	assert.Equal(t, "fleet.csv", cfg.Roster.FleetCSV)
	assert.Equal(t, []string{"Arthur Dent", "Ford Prefect"}, cfg.Passengers)
}

func TestLoad_LogSettingsAreCaseInsensitive(t *testing.T) {
	path := writeConfig(t, `
log:
  level: DEBUG
  format: JSON
`)
	t.Setenv("STRATOSFEAR_CONFIG_PATH", path)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "fuel_pool: 12000\n")
	t.Setenv("STRATOSFEAR_CONFIG_PATH", path)
	t.Setenv("STRATOSFEAR_FUEL_POOL", "9000")
	t.Setenv("STRATOSFEAR_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.FuelPool)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FlagsWin(t *testing.T) {
	path := writeConfig(t, "fuel_pool: 12000\ndisplay:\n  profile: glitch\n")
	t.Setenv("STRATOSFEAR_FUEL_POOL", "9000")

	cfg, err := Load(testFlags(t, "--config", path, "--fuel-pool", "4000", "--profile", "slow"))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.FuelPool)
	assert.Equal(t, "slow", cfg.Display.Profile)
}

func TestLoad_UnsetFlagsKeepDefaults(t *testing.T) {
	cfg, err := Load(testFlags(t))
	require.NoError(t, err)

	assert.Equal(t, 25000, cfg.FuelPool)
	assert.Equal(t, "normal", cfg.Display.Profile)
}

func TestLoad_BadConfigFile(t *testing.T) {
	path := writeConfig(t, "fuel_pool: [oops\n")
	t.Setenv("STRATOSFEAR_CONFIG_PATH", path)

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			FuelPool:       25000,
			DBPath:         ":memory:",
			BatchSize:      50,
			BatchTimeoutMS: 250,
			Log:            LogConfig{Level: "warn", Format: "text"},
			Display:        DisplayConfig{Profile: "normal", Color: "auto"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero pool allowed", func(c *Config) { c.FuelPool = 0 }, ""},
		{"negative pool", func(c *Config) { c.FuelPool = -5 }, "fuel_pool"},
		{"empty db path", func(c *Config) { c.DBPath = "" }, "db_path"},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, "batch_size"},
		{"zero timeout", func(c *Config) { c.BatchTimeoutMS = 0 }, "batch_timeout_ms"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"bad profile", func(c *Config) { c.Display.Profile = "warp" }, "invalid display profile"},
		{"bad color", func(c *Config) { c.Display.Color = "sepia" }, "invalid color mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
