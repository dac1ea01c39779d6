package main

import (
	"os"

	"blackjack/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// prints the default configuration, i.e., go run ./cmd/generate-config > config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
