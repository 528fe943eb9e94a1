// Package config loads application settings from a .alpha.yaml file, the
// environment, and an optional .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds everything the CLI and TUI need at startup.
type Config struct {
	APIKey       string
	Model        string
	HolidaysPath string
	Latitude     float64
	Longitude    float64
	LogLevel     string
}

// Load reads configuration. Precedence is env over config file over
// defaults; a .env in the working directory is folded into the env first.
func Load() (*Config, error) {
	// Optional; a missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("model", "gemini-2.5-flash")
	v.SetDefault("loglevel", "info")
	v.SetDefault("latitude", 12.9716)
	v.SetDefault("longitude", 77.5946)

	v.SetConfigName(".alpha") // .yaml is implicit
	v.SetEnvPrefix("ALPHA")
	v.AutomaticEnv()

	if override := os.Getenv("ALPHA_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		APIKey:       v.GetString("apikey"),
		Model:        v.GetString("model"),
		HolidaysPath: v.GetString("holidays"),
		Latitude:     v.GetFloat64("latitude"),
		Longitude:    v.GetFloat64("longitude"),
		LogLevel:     v.GetString("loglevel"),
	}
	// The original service reads its key from GEMINI_API_KEY.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.HolidaysPath != "" {
		if expanded, err := homedir.Expand(cfg.HolidaysPath); err == nil {
			cfg.HolidaysPath = expanded
		}
	}
	return cfg, nil
}
