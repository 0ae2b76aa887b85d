// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"

	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment sets a value.
const (
	DefaultPort        = "5000"
	DefaultEnvironment = "production"
)

// Config stores all configuration of the application.
//
// The values are read by viper from an optional config file or environment variables.
type Config struct {
	Port         string `mapstructure:"PORT"`
	Environement string `mapstructure:"GO_ENV"`
	SeedFile     string `mapstructure:"SEED_FILE"`
}

// ServerAddress returns the address the http server listens on.
func (c Config) ServerAddress() string {
	return ":" + c.Port
}

// Load read configuration from file or environment variables.
// A missing app.env file in path is not an error.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("GO_ENV", DefaultEnvironment)
	v.SetDefault("SEED_FILE", "")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}
