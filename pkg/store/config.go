package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the resolved tool configuration.
type Config interface {
	BasePath() string
	DayNightBaseURL() string
	DayNightCacheSize() int
}

// LoadConfig reads the optional .zonetick config file plus ZONETICK_*
// environment overrides and applies defaults for anything unset.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.zonetick")
	viper.SetDefault("daynight_url", "https://api.sunrise-sunset.org")
	viper.SetDefault("daynight_cache", 512)
	viper.SetConfigName(".zonetick") // .yaml is implicit
	viper.SetEnvPrefix("ZONETICK")
	viper.AutomaticEnv()

	if override := os.Getenv("ZONETICK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand base path: %w", err)
	}

	return &fileConfig{
		Path:          path,
		DayNightURL:   viper.GetString("daynight_url"),
		DayNightCache: viper.GetInt("daynight_cache"),
	}, nil
}

type fileConfig struct {
	Path          string `json:"path"`
	DayNightURL   string `json:"daynight_url"`
	DayNightCache int    `json:"daynight_cache"`
}

func (f *fileConfig) BasePath() string        { return f.Path }
func (f *fileConfig) DayNightBaseURL() string { return f.DayNightURL }
func (f *fileConfig) DayNightCacheSize() int  { return f.DayNightCache }
