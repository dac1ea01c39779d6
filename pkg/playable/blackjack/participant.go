package blackjack

import (
	"fmt"

	"blackjack/pkg/deck"
)

// dealerStandsOn is the total the dealer stops drawing at, soft or hard
const dealerStandsOn = 17

// Participant is anyone holding a hand at the table
type Participant interface {
	Name() string
	Hand() *deck.Hand

	// IsHitting is asked once each time the participant is offered another card
	IsHitting() (bool, error)
}

// seat holds what every participant has in common
type seat struct {
	name string
	hand deck.Hand
}

// Name returns the display name
func (s *seat) Name() string {
	return s.name
}

// Hand returns the participant's hand
func (s *seat) Hand() *deck.Hand {
	return &s.hand
}

// ClearHand removes all cards from the hand
func (s *seat) ClearHand() {
	s.hand.Clear()
}

// Player is the human at the table
type Player struct {
	seat
	prompter Prompter
}

// NewPlayer returns a new player who decides through the prompter
func NewPlayer(name string, prompter Prompter) *Player {
	return &Player{
		seat:     seat{name: name, hand: make(deck.Hand, 0, 11)},
		prompter: prompter,
	}
}

// IsHitting asks the player whether they want another card
func (p *Player) IsHitting() (bool, error) {
	return p.prompter.PromptYesNo(fmt.Sprintf("%s, take another card?", p.name))
}

// Dealer is the house
type Dealer struct {
	seat
}

// NewDealer returns a new dealer
func NewDealer(name string) *Dealer {
	return &Dealer{
		seat: seat{name: name, hand: make(deck.Hand, 0, 11)},
	}
}

// IsHitting returns true while the dealer is under 17
func (d *Dealer) IsHitting() (bool, error) {
	return d.hand.Total() < dealerStandsOn, nil
}

// FlipFirstCard turns the hole card face-down
func (d *Dealer) FlipFirstCard() {
	if card := d.hand.FirstCard(); card != nil {
		card.Hide()
	}
}

// FlipCards reveals every face-down card
func (d *Dealer) FlipCards() {
	d.hand.RevealAll()
}

var (
	_ Participant = (*Player)(nil)
	_ Participant = (*Dealer)(nil)
)
