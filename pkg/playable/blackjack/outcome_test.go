package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Adjustment(t *testing.T) {
	tests := []struct {
		outcome Outcome
		wager   int
		want    int
	}{
		{OutcomePending, 100, 0},
		{OutcomePlayerBlackjack, 100, 150},
		{OutcomePlayerBlackjack, 25, 37},
		{OutcomePlayerBlackjack, 1, 1},
		{OutcomeDealerBlackjack, 100, -100},
		{OutcomeNaturalPush, 100, 0},
		{OutcomePlayerBust, 200, -200},
		{OutcomeDealerBust, 200, 200},
		{OutcomePlayerWins, 200, 200},
		{OutcomeDealerWins, 200, -200},
		{OutcomePush, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.Adjustment(tt.wager))
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Blackjack", OutcomePlayerBlackjack.String())
	assert.Equal(t, "Push", OutcomePush.String())
	assert.Equal(t, "Blackjack Push", OutcomeNaturalPush.String())
	assert.Panics(t, func() {
		_ = Outcome(99).String()
	})
}

func TestOutcome_Flags(t *testing.T) {
	a := assert.New(t)

	a.True(OutcomeNaturalPush.IsNatural())
	a.True(OutcomeNaturalPush.IsPush())
	a.True(OutcomePush.IsPush())
	a.False(OutcomePush.IsNatural())
	a.True(OutcomeDealerBlackjack.IsNatural())
	a.False(OutcomePlayerWins.IsPush())
}

func TestWagerError(t *testing.T) {
	a := assert.New(t)

	a.NoError(validateWager(1, 10))
	a.NoError(validateWager(10, 10))
	a.Equal(WagerError{Wager: 0, Bankroll: 10}, validateWager(0, 10))
	a.Equal(WagerError{Wager: 11, Bankroll: 10}, validateWager(11, 10))
	a.EqualError(validateWager(-1, 10), "wager of $-1 must be between $1 and $10")
}
