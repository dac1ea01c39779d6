package blackjack

import (
	"fmt"

	"blackjack/internal/rng"
	"blackjack/pkg/deck"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Stats tallies the rounds played in a session
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
}

func (s *Stats) record(o Outcome) {
	s.Rounds++
	switch {
	case o.IsPush():
		s.Pushes++
	case o.Adjustment(1) > 0:
		s.Wins++
	default:
		s.Losses++
	}

	if o == OutcomePlayerBlackjack {
		s.Blackjacks++
	}
}

// Session is one player at the table for as many rounds as they can afford
type Session struct {
	ID string

	player   *Player
	dealer   *Dealer
	deck     *deck.Deck
	prompter Prompter
	renderer Renderer
	logger   logrus.FieldLogger

	bankroll     int
	currentWager int
	rounds       int
	stats        Stats
	done         bool

	// prepareDeck rebuilds and shuffles the deck at the start of each round
	prepareDeck func(d *deck.Deck)
}

// NewSession returns a new session for the named player
func NewSession(playerName string, opts Options, prompter Prompter, renderer Renderer, logger logrus.FieldLogger) (*Session, error) {
	if playerName == "" {
		return nil, ErrMissingName
	}

	if opts.StartingBankroll <= 0 {
		return nil, ErrNoBankroll
	}

	if opts.DealerName == "" {
		opts.DealerName = DefaultOptions().DealerName
	}

	source := opts.Source
	if source == nil {
		source = rng.CryptoSource()
	}

	id := uuid.New().String()
	s := &Session{
		ID:       id,
		player:   NewPlayer(playerName, prompter),
		dealer:   NewDealer(opts.DealerName),
		deck:     deck.New(),
		prompter: prompter,
		renderer: renderer,
		logger: logger.WithFields(logrus.Fields{
			"session": id,
			"player":  playerName,
		}),
		bankroll: opts.StartingBankroll,
		prepareDeck: func(d *deck.Deck) {
			d.Populate()
			d.Shuffle(source())
		},
	}

	return s, nil
}

// Run plays rounds until the bankroll is gone or the player stops
func (s *Session) Run() error {
	s.logger.WithField("bankroll", s.bankroll).Info("session started")

	for {
		if _, err := s.PlayRound(); err != nil {
			return err
		}

		if s.bankroll <= 0 {
			s.logger.Info("bankroll exhausted")
			s.end()
			return nil
		}

		again, err := s.prompter.PromptYesNo("Play again?")
		if err != nil {
			return fmt.Errorf("could not read play again answer: %w", err)
		}

		if !again {
			s.end()
			return nil
		}
	}
}

// PlayRound plays a single round from wager to settlement
func (s *Session) PlayRound() (*RoundResult, error) {
	if s.done || s.bankroll <= 0 {
		return nil, ErrSessionOver
	}

	s.rounds++
	return newRound(s, s.rounds).play()
}

func (s *Session) end() {
	s.done = true
	s.logger.WithFields(logrus.Fields{
		"bankroll": s.bankroll,
		"rounds":   s.stats.Rounds,
		"wins":     s.stats.Wins,
		"losses":   s.stats.Losses,
		"pushes":   s.stats.Pushes,
	}).Info("session ended")
}

// Bankroll returns the player's current bankroll
func (s *Session) Bankroll() int {
	return s.bankroll
}

// CurrentWager returns the most recent wager placed
func (s *Session) CurrentWager() int {
	return s.currentWager
}

// Stats returns a copy of the session's tallies
func (s *Session) Stats() Stats {
	return s.stats
}

// IsOver returns true once Run has finished
func (s *Session) IsOver() bool {
	return s.done
}

// Player returns the human participant
func (s *Session) Player() *Player {
	return s.player
}

// Dealer returns the house participant
func (s *Session) Dealer() *Dealer {
	return s.dealer
}
