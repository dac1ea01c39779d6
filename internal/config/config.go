package config

import (
	"errors"
	"os"

	"blackjack/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack table
type Config struct {
	loaded           bool
	StartingBankroll int    `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	DealerName       string `yaml:"dealerName" envconfig:"dealer_name"`
	Seed             int64  `yaml:"seed" envconfig:"seed"`
	Locale           string `yaml:"locale" envconfig:"locale"`
	Log              struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		StartingBankroll: 1000,
		DealerName:       "Dealer",
		Locale:           "en",
	}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	config = cfg
	config.loaded = true
	return nil
}
