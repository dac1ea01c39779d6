package console

import (
	"bytes"
	"strings"
	"testing"

	"blackjack/pkg/deck"
	"blackjack/pkg/playable/blackjack"
	"github.com/stretchr/testify/assert"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, "en"), out
}

func TestConsole_PromptName(t *testing.T) {
	a := assert.New(t)

	c, out := newTestConsole("  Тарас Шевченко \n")
	name, err := c.PromptName()
	a.NoError(err)
	a.Equal("Тарас Шевченко", name)
	a.Equal("Your name: ", out.String())

	// e + combining acute becomes a single é
	c, _ = newTestConsole("Rene\u0301\n")
	name, err = c.PromptName()
	a.NoError(err)
	a.Equal("Ren\u00e9", name)

	c, _ = newTestConsole("\n")
	name, err = c.PromptName()
	a.NoError(err)
	a.Equal("", name)

	c, _ = newTestConsole("")
	_, err = c.PromptName()
	a.Equal(ErrNoInput, err)
}

func TestConsole_PromptWager(t *testing.T) {
	a := assert.New(t)

	c, out := newTestConsole("ten\n\n$50\n")
	wager, err := c.PromptWager(500)
	a.NoError(err)
	a.Equal(50, wager)
	a.Equal(2, strings.Count(out.String(), "Please enter a whole number."))
	a.Contains(out.String(), "You have $500")

	// range is checked by the round, the console only warns
	c, out = newTestConsole("900")
	wager, err = c.PromptWager(500)
	a.NoError(err)
	a.Equal(900, wager)
	a.Contains(out.String(), "Wager must be between $1 and $500.")

	c, _ = newTestConsole("abc\n")
	_, err = c.PromptWager(500)
	a.Equal(ErrNoInput, err)
}

func TestConsole_PromptYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"Так\n", true},
		{"n\n", false},
		{"No\n", false},
		{"ні\n", false},
		{"maybe\ny\n", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			got, err := c.PromptYesNo("Play again?")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(out.String(), "Play again? (y/n): "))
		})
	}
}

func TestConsole_Echo(t *testing.T) {
	c, out := newTestConsole("y\n")
	c.echo = true

	_, err := c.PromptYesNo("Hit?")
	assert.NoError(t, err)
	assert.Equal(t, "Hit? (y/n): y\n", out.String())
}

func TestConsole_Render(t *testing.T) {
	a := assert.New(t)

	dealer := deck.Hand(deck.CardsFromString("14s,5d"))
	dealer.FirstCard().Hide()

	c, out := newTestConsole("")
	c.Render(&blackjack.TableState{
		Round:      2,
		State:      blackjack.RoundStateDealing,
		PlayerName: "Тарас",
		PlayerHand: deck.Hand(deck.CardsFromString("10h,8c")),
		DealerName: "Dealer",
		DealerHand: dealer,
		Wager:      100,
		Bankroll:   500,
	})

	a.Equal("\n--- Round 2 ---\nDealer: XX 5♢ [??]\nТарас: 10♡ 8♣ [18]\n\n", out.String())
	a.NotContains(out.String(), "A♠")
}

func TestConsole_RenderSettled(t *testing.T) {
	tests := []struct {
		outcome    blackjack.Outcome
		adjustment int
		want       string
	}{
		{blackjack.OutcomePlayerBlackjack, 150, "Blackjack! Ann wins $150."},
		{blackjack.OutcomeDealerBlackjack, -100, "Dealer has blackjack. Ann loses $100."},
		{blackjack.OutcomeNaturalPush, 0, "Both have blackjack. Push."},
		{blackjack.OutcomePlayerBust, -100, "Ann busts and loses $100."},
		{blackjack.OutcomeDealerBust, 100, "Dealer busts. Ann wins $100."},
		{blackjack.OutcomePlayerWins, 100, "Ann wins $100."},
		{blackjack.OutcomeDealerWins, -100, "Dealer wins. Ann loses $100."},
		{blackjack.OutcomePush, 0, "Push."},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			c, out := newTestConsole("")
			c.Render(&blackjack.TableState{
				Round:      1,
				State:      blackjack.RoundStateSettlement,
				PlayerName: "Ann",
				PlayerHand: deck.Hand(deck.CardsFromString("10h,9c")),
				DealerName: "Dealer",
				DealerHand: deck.Hand(deck.CardsFromString("10s,7d")),
				Wager:      100,
				Bankroll:   600,
				Outcome:    tt.outcome,
				Adjustment: tt.adjustment,
			})

			assert.Contains(t, out.String(), tt.want+"\n")
			assert.Contains(t, out.String(), "Dealer: 10♠ 7♢ [17]\n")
			assert.True(t, strings.HasSuffix(out.String(), "--- Round over ---\nBankroll: $600\n"))
		})
	}
}

func TestConsole_Summary(t *testing.T) {
	c, out := newTestConsole("")
	c.Summary(blackjack.Stats{Rounds: 4, Wins: 1, Losses: 3}, 0)

	assert.Contains(t, out.String(), "Out of money. Game over.")
	assert.Contains(t, out.String(), "Rounds: 4  Won: 1  Lost: 3  Pushed: 0  Blackjacks: 0")
	assert.Contains(t, out.String(), "Final bankroll: $0")
}

func TestNew_UnknownLocale(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{}, "not a locale!")
	assert.Equal(t, "$5", c.money(5))
}
