package main

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "IEEE754"
	configName = ".ieee754"

	outputText = "text"
	outputJSON = "json"

	defaultOutput   = outputText
	defaultLogLevel = "warn"
)

type config struct {
	DecimalPlaces int32  `mapstructure:"decimal_places"`
	Output        string `mapstructure:"output"`
	LogLevel      string `mapstructure:"log_level"`
}

var (
	flagKeys = map[string]string{
		"decimal-places": "decimal_places",
		"output":         "output",
		"log-level":      "log_level",
	}
)

func (a *app) bindFlags(flags *pflag.FlagSet) {
	for flag, key := range flagKeys {
		// the flags are defined right before, so the lookup never fails.
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}
}

// loadConfig reads the config file, the environment, and the flags, in order of increasing priority.
func (a *app) loadConfig(path string) error {
	v := a.v
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&a.config); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	level, err := log.ParseLevel(a.config.LogLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debugf("Loaded config from %q.", used)
	}
	switch a.config.Output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q", a.config.Output)
	}
	if a.config.DecimalPlaces < 0 {
		return fmt.Errorf("decimal places must not be negative, got %d", a.config.DecimalPlaces)
	}
	return nil
}
