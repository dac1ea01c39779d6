package blackjack

import "blackjack/pkg/deck"

// TableState is a snapshot of the table handed to the Renderer
// Hands are copies, but the cards are shared, so visibility is as of the moment Render is called
type TableState struct {
	Round      int
	State      RoundState
	PlayerName string
	PlayerHand deck.Hand
	DealerName string
	DealerHand deck.Hand
	Wager      int
	Bankroll   int

	// Outcome and Adjustment are only set once the round is settled
	Outcome    Outcome
	Adjustment int
}

// IsSettled returns true if the snapshot is the round's final report
func (t *TableState) IsSettled() bool {
	return t.Outcome != OutcomePending
}

func (s *Session) tableState(r *round) *TableState {
	return &TableState{
		Round:      r.number,
		State:      r.State,
		PlayerName: s.player.Name(),
		PlayerHand: s.player.Hand().Clone(),
		DealerName: s.dealer.Name(),
		DealerHand: s.dealer.Hand().Clone(),
		Wager:      r.Wager,
		Bankroll:   s.bankroll,
		Outcome:    r.Outcome,
		Adjustment: r.Adjustment,
	}
}
