package config

import (
	"github.com/spf13/viper"
)

// Config holds the engine settings. Everything has a compiled-in default;
// an optional txengine.yaml next to the executable may override them. The
// CLI itself takes no flags.
type Config struct {
	Precision int    // fractional digits in the output projection
	LogLevel  string // zap level for the diagnostic stream
}

// Load reads the optional config file from dir and falls back to defaults
// when it is absent.
func Load(dir string) *Config {
	v := viper.New()
	v.SetDefault("output.precision", 4)
	v.SetDefault("log.level", "info")

	v.SetConfigName("txengine")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.ReadInConfig() // missing file means defaults

	return &Config{
		Precision: v.GetInt("output.precision"),
		LogLevel:  v.GetString("log.level"),
	}
}
