package blackjack

import (
	"io"
	"testing"

	"blackjack/pkg/deck"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers from queues and returns io.EOF once a queue runs dry
type scriptedPrompter struct {
	wagers       []int
	answers      []bool
	questions    []string
	wagerPrompts int
}

func (s *scriptedPrompter) PromptWager(bankroll int) (int, error) {
	if len(s.wagers) == 0 {
		return 0, io.EOF
	}

	s.wagerPrompts++
	w := s.wagers[0]
	s.wagers = s.wagers[1:]
	return w, nil
}

func (s *scriptedPrompter) PromptYesNo(message string) (bool, error) {
	s.questions = append(s.questions, message)
	if len(s.answers) == 0 {
		return false, io.EOF
	}

	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

// standingPrompter always bets the same amount and never hits
type standingPrompter struct {
	wager int
}

func (s standingPrompter) PromptWager(bankroll int) (int, error) {
	if s.wager > bankroll {
		return bankroll, nil
	}

	return s.wager, nil
}

func (s standingPrompter) PromptYesNo(string) (bool, error) {
	return false, nil
}

// recordingRenderer keeps what was visible at each render
type recordingRenderer struct {
	states        []*TableState
	dealerViews   []string
	dealerVisible []bool
}

func (r *recordingRenderer) Render(state *TableState) {
	r.states = append(r.states, state)
	r.dealerViews = append(r.dealerViews, state.DealerHand.String())
	r.dealerVisible = append(r.dealerVisible, state.DealerHand.IsRevealed())
}

func (r *recordingRenderer) last() *TableState {
	return r.states[len(r.states)-1]
}

// stackDeck returns a prepareDeck func that deals each round's cards in the order listed
func stackDeck(rounds ...string) func(d *deck.Deck) {
	i := 0
	return func(d *deck.Deck) {
		cards := deck.CardsFromString(rounds[i%len(rounds)])
		i++

		// the top of the deck is the end of the slice
		for l, r := 0, len(cards)-1; l < r; l, r = l+1, r-1 {
			cards[l], cards[r] = cards[r], cards[l]
		}

		d.Cards = cards
	}
}

func newTestSession(t *testing.T, bankroll int, prompter Prompter, rounds ...string) (*Session, *recordingRenderer, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	opts := DefaultOptions()
	opts.StartingBankroll = bankroll

	renderer := &recordingRenderer{}
	s, err := NewSession("Тарас", opts, prompter, renderer, logger)
	require.NoError(t, err)

	if len(rounds) > 0 {
		s.prepareDeck = stackDeck(rounds...)
	}

	return s, renderer, hook
}

func countEntries(hook *test.Hook, message string) int {
	n := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == message {
			n++
		}
	}

	return n
}
