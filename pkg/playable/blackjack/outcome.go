package blackjack

import "fmt"

// Outcome is how a round ended for the player
type Outcome int

// Outcome constants
const (
	OutcomePending Outcome = iota
	OutcomePlayerBlackjack
	OutcomeDealerBlackjack
	OutcomeNaturalPush
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "Pending"
	case OutcomePlayerBlackjack:
		return "Blackjack"
	case OutcomeDealerBlackjack:
		return "Dealer Blackjack"
	case OutcomeNaturalPush:
		return "Blackjack Push"
	case OutcomePlayerBust:
		return "Bust"
	case OutcomeDealerBust:
		return "Dealer Bust"
	case OutcomePlayerWins:
		return "Win"
	case OutcomeDealerWins:
		return "Loss"
	case OutcomePush:
		return "Push"
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// Adjustment returns how much the bankroll moves for the wager
// A natural pays 3:2, rounded down
func (o Outcome) Adjustment(wager int) int {
	switch o {
	case OutcomePlayerBlackjack:
		return wager * 3 / 2
	case OutcomeDealerBust, OutcomePlayerWins:
		return wager
	case OutcomeDealerBlackjack, OutcomePlayerBust, OutcomeDealerWins:
		return -wager
	}

	return 0
}

// IsNatural returns true if the round was decided by a two-card 21
func (o Outcome) IsNatural() bool {
	return o == OutcomePlayerBlackjack || o == OutcomeDealerBlackjack || o == OutcomeNaturalPush
}

// IsPush returns true if the wager is returned unchanged
func (o Outcome) IsPush() bool {
	return o == OutcomeNaturalPush || o == OutcomePush
}
