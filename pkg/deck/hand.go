package deck

import "strings"

// Blackjack is the best possible total
const Blackjack = 21

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Clear empties the hand
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// Total returns the blackjack total of the hand
// Every ace starts at 11 and drops to 1, one at a time, while the hand is over 21
func (h Hand) Total() int {
	total := 0
	highAces := 0
	for _, card := range h {
		total += card.Value()
		if card.IsAce() {
			highAces++
		}
	}

	for total > Blackjack && highAces > 0 {
		total -= aceValue - 1
		highAces--
	}

	return total
}

// IsSoft returns true if an ace is still being counted as 11
func (h Hand) IsSoft() bool {
	hard := 0
	for _, card := range h {
		if card.IsAce() {
			hard++
		} else {
			hard += card.Value()
		}
	}

	return h.Total() != hard
}

// IsBusted returns true if the hand is over 21
func (h Hand) IsBusted() bool {
	return h.Total() > Blackjack
}

// HasBlackjack returns true if the hand is a natural: two cards totaling 21
func (h Hand) HasBlackjack() bool {
	return len(h) == 2 && h.Total() == Blackjack
}

// IsRevealed returns true if every card in the hand is face-up
func (h Hand) IsRevealed() bool {
	for _, card := range h {
		if !card.IsFaceUp() {
			return false
		}
	}

	return true
}

// RevealAll turns every card face-up
func (h Hand) RevealAll() {
	for _, card := range h {
		card.Reveal()
	}
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

// String renders the cards for display, face-down cards masked
func (h Hand) String() string {
	s := make([]string, len(h))
	for i, card := range h {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
