package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits is every suit in enumeration order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// blackjack values
const (
	faceCardValue = 10
	aceValue      = 11
)

// HiddenCard is how a face-down card renders
const HiddenCard = "XX"

// Card is an individual playing card
// Rank and Suit never change once the card is created. Only the visibility does.
type Card struct {
	Rank int
	Suit Suit

	// zero value is face-up
	faceDown bool
}

// NewCard returns a face-up card
func NewCard(rank int, suit Suit) *Card {
	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// Value returns the blackjack value of the card
// An ace is always 11 here; Hand.Total() decides when it drops to 1
func (c *Card) Value() int {
	switch {
	case c.Rank == Ace:
		return aceValue
	case c.Rank >= Jack:
		return faceCardValue
	default:
		return c.Rank
	}
}

// IsAce returns true if the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceUp returns true if the card is visible
func (c *Card) IsFaceUp() bool {
	return !c.faceDown
}

// Reveal turns the card face-up
func (c *Card) Reveal() {
	c.faceDown = false
}

// Hide turns the card face-down
func (c *Card) Hide() {
	c.faceDown = true
}

// String renders the card for display, i.e., A♠ or 10♡
// A face-down card renders as HiddenCard regardless of its rank and suit
func (c *Card) String() string {
	if c.faceDown {
		return HiddenCard
	}

	return c.Face()
}

// Face renders the card's rank and suit even when it is face-down
func (c *Card) Face() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return rank + suit
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(rank, suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
// Visibility is ignored
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
