package blackjack

import (
	"errors"
	"fmt"
)

// ErrSessionOver is returned when a round is requested after the session ended
var ErrSessionOver = errors.New("session is over")

// ErrMissingName is returned when a session is created without a player name
var ErrMissingName = errors.New("player name is required")

// ErrNoBankroll is returned when a session is created without any money to wager
var ErrNoBankroll = errors.New("starting bankroll must be greater than zero")

// WagerError describes a wager outside of 1..bankroll
type WagerError struct {
	Wager    int
	Bankroll int
}

func (w WagerError) Error() string {
	return fmt.Sprintf("wager of $%d must be between $1 and $%d", w.Wager, w.Bankroll)
}

// validateWager returns a WagerError unless 0 < wager <= bankroll
func validateWager(wager, bankroll int) error {
	if wager <= 0 || wager > bankroll {
		return WagerError{Wager: wager, Bankroll: bankroll}
	}

	return nil
}
