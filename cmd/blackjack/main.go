package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/rng"
	"blackjack/internal/util"
	"blackjack/pkg/playable/blackjack"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Version is the game version
var Version = "v0.0.0-dev"

var seed = flag.Int64("seed", 0, "shuffle seed for a reproducible game (0 uses the configured seed)")
var bankroll = flag.Int("bankroll", 0, "starting bankroll (0 uses the configured bankroll)")
var version = flag.Bool("version", false, "print the version and exit")

func main() {
	flag.Parse()
	if *version {
		fmt.Println(Version)
		return
	}

	// a missing .env is fine
	_ = godotenv.Load()

	cfg := config.Instance()
	setupLogger(cfg)

	con := console.NewStdio(cfg.Locale)
	name, err := con.PromptName()
	if errors.Is(err, console.ErrNoInput) {
		return
	} else if err != nil {
		logrus.WithError(err).Fatal("could not read name")
	}

	if name == "" {
		name = util.GetRandomName(rng.Crypto{})
		fmt.Printf("Playing as %s\n", name)
	}

	session, err := blackjack.NewSession(name, options(cfg), con, con, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("could not start session")
	}

	err = session.Run()
	con.Summary(session.Stats(), session.Bankroll())
	if err != nil && !errors.Is(err, console.ErrNoInput) {
		logrus.WithError(err).Fatal("session ended unexpectedly")
	}
}

func options(cfg config.Config) blackjack.Options {
	opts := blackjack.DefaultOptions()
	opts.StartingBankroll = cfg.StartingBankroll
	opts.DealerName = cfg.DealerName

	if *bankroll > 0 {
		opts.StartingBankroll = *bankroll
	}

	s := cfg.Seed
	if *seed != 0 {
		s = *seed
	}

	if s != 0 {
		logrus.WithField("seed", s).Info("using seeded shuffles")
		opts.Source = rng.SeededSource(s)
	}

	return opts
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
