// Package config resolves relist settings from defaults, an optional
// relist.yaml, RELIST_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "relist"
	configType = "yaml"
	envPrefix  = "RELIST"

	KeyTheme     = "theme"
	KeySeparator = "separator"
	KeyIDs       = "ids"
	KeySeedFile  = "seed_file"
	KeyLogFile   = "log_file"
	KeyLogLevel  = "log_level"
	KeyClipboard = "clipboard"
	KeyAltScreen = "alt_screen"
	KeyNoColor   = "no_color"
)

// Config is the resolved settings for one run.
type Config struct {
	Theme     string `mapstructure:"theme"`
	Separator string `mapstructure:"separator"`
	IDs       string `mapstructure:"ids"`
	SeedFile  string `mapstructure:"seed_file"`
	LogFile   string `mapstructure:"log_file"`
	LogLevel  string `mapstructure:"log_level"`
	Clipboard bool   `mapstructure:"clipboard"`
	AltScreen bool   `mapstructure:"alt_screen"`
	NoColor   bool   `mapstructure:"no_color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:     "classic",
		Separator: "\n",
		IDs:       "sequential",
		LogLevel:  "info",
		Clipboard: true,
		AltScreen: true,
	}
}

// Load reads configuration. path may be empty, in which case relist.yaml is
// looked up in the working directory and $HOME/.config/relist; a missing
// file is not an error. flags, when non-nil, override everything else for
// flags the user actually set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeySeparator, d.Separator)
	v.SetDefault(KeyIDs, d.IDs)
	v.SetDefault(KeySeedFile, d.SeedFile)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyClipboard, d.Clipboard)
	v.SetDefault(KeyAltScreen, d.AltScreen)
	v.SetDefault(KeyNoColor, d.NoColor)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyTheme, KeySeparator, KeyIDs, KeySeedFile, KeyLogFile, KeyLogLevel, KeyNoColor} {
			if f := flags.Lookup(flagName(key)); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// flagName maps a config key to its CLI flag: seed_file -> seed.
func flagName(key string) string {
	switch key {
	case KeySeedFile:
		return "seed"
	case KeyLogFile:
		return "log-file"
	case KeyLogLevel:
		return "log-level"
	case KeyNoColor:
		return "no-color"
	}
	return key
}
