package blackjack

import (
	"fmt"

	"blackjack/pkg/deck"
	"github.com/sirupsen/logrus"
)

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateBetting means we are waiting on a valid wager
	RoundStateBetting RoundState = "betting"

	// RoundStateDealing means the deck is rebuilt and the opening cards go out
	RoundStateDealing RoundState = "dealing"

	// RoundStateNaturalsCheck means both opening hands are checked for blackjack
	RoundStateNaturalsCheck RoundState = "naturals-check"

	// RoundStatePlayerTurn means the player is hitting or standing
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the dealer is drawing to 17
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateShowdown means the hands are compared
	RoundStateShowdown RoundState = "showdown"

	// RoundStateSettlement means the bankroll is adjusted and the result reported
	RoundStateSettlement RoundState = "settlement"

	// RoundStateComplete means the round is over
	RoundStateComplete RoundState = "complete"
)

// RoundResult is the summary of a finished round
type RoundResult struct {
	Round       int
	Wager       int
	Outcome     Outcome
	Adjustment  int
	PlayerTotal int
	DealerTotal int
	Bankroll    int
}

// round drives a single hand from wager to settlement
type round struct {
	number     int
	State      RoundState
	Wager      int
	Outcome    Outcome
	Adjustment int

	session *Session
	log     logrus.FieldLogger
}

func newRound(s *Session, number int) *round {
	return &round{
		number:  number,
		State:   RoundStateBetting,
		session: s,
		log:     s.logger.WithField("round", number),
	}
}

// play advances the round until it completes
func (r *round) play() (*RoundResult, error) {
	for r.State != RoundStateComplete {
		from := r.State
		if err := r.step(); err != nil {
			return nil, err
		}

		r.log.WithFields(logrus.Fields{
			"from": from,
			"to":   r.State,
		}).Debug("round state changed")
	}

	s := r.session
	return &RoundResult{
		Round:       r.number,
		Wager:       r.Wager,
		Outcome:     r.Outcome,
		Adjustment:  r.Adjustment,
		PlayerTotal: s.player.Hand().Total(),
		DealerTotal: s.dealer.Hand().Total(),
		Bankroll:    s.bankroll,
	}, nil
}

func (r *round) step() error {
	switch r.State {
	case RoundStateBetting:
		return r.placeBet()
	case RoundStateDealing:
		r.deal()
	case RoundStateNaturalsCheck:
		r.checkNaturals()
	case RoundStatePlayerTurn:
		return r.playerTurn()
	case RoundStateDealerTurn:
		return r.dealerTurn()
	case RoundStateShowdown:
		r.showdown()
	case RoundStateSettlement:
		r.settle()
	default:
		return fmt.Errorf("cannot advance round from state: %s", r.State)
	}

	return nil
}

// placeBet asks until the wager is within 1..bankroll
func (r *round) placeBet() error {
	s := r.session
	for {
		wager, err := s.prompter.PromptWager(s.bankroll)
		if err != nil {
			return fmt.Errorf("could not read wager: %w", err)
		}

		if err := validateWager(wager, s.bankroll); err != nil {
			r.log.WithError(err).Debug("wager rejected")
			continue
		}

		r.Wager = wager
		s.currentWager = wager
		r.log.WithField("wager", wager).Debug("wager placed")
		r.State = RoundStateDealing
		return nil
	}
}

// deal rebuilds the deck and deals player, dealer, player, dealer with the dealer's first card down
func (r *round) deal() {
	s := r.session
	s.prepareDeck(s.deck)
	r.log.WithField("hash", s.deck.HashCode()).Debug("deck shuffled")

	s.player.ClearHand()
	s.dealer.ClearHand()

	for i := 0; i < 2; i++ {
		r.dealTo(s.player)
		r.dealTo(s.dealer)
	}

	s.dealer.FlipFirstCard()
	r.render()

	r.State = RoundStateNaturalsCheck
}

// checkNaturals settles immediately if either opening hand is a blackjack
func (r *round) checkNaturals() {
	s := r.session
	playerBJ := s.player.Hand().HasBlackjack()
	dealerBJ := s.dealer.Hand().HasBlackjack()

	if !playerBJ && !dealerBJ {
		r.State = RoundStatePlayerTurn
		return
	}

	s.dealer.FlipCards()
	r.render()

	switch {
	case playerBJ && dealerBJ:
		r.Outcome = OutcomeNaturalPush
	case playerBJ:
		r.Outcome = OutcomePlayerBlackjack
	default:
		r.Outcome = OutcomeDealerBlackjack
	}

	r.State = RoundStateSettlement
}

func (r *round) playerTurn() error {
	s := r.session
	hand := s.player.Hand()
	for !hand.IsBusted() {
		hit, err := s.player.IsHitting()
		if err != nil {
			return fmt.Errorf("could not read hit decision: %w", err)
		}

		if !hit || !r.dealTo(s.player) {
			break
		}

		r.render()
	}

	if hand.IsBusted() {
		r.log.WithField("total", hand.Total()).Debug("player busted")
		r.State = RoundStateShowdown
		return nil
	}

	r.State = RoundStateDealerTurn
	return nil
}

func (r *round) dealerTurn() error {
	s := r.session
	s.dealer.FlipCards()
	r.render()

	for {
		hit, err := s.dealer.IsHitting()
		if err != nil {
			return fmt.Errorf("could not get dealer decision: %w", err)
		}

		if !hit || !r.dealTo(s.dealer) {
			break
		}

		r.render()
	}

	r.State = RoundStateShowdown
	return nil
}

// showdown decides the winner of a round that had no naturals
func (r *round) showdown() {
	s := r.session
	r.State = RoundStateSettlement

	// a busted player has lost no matter what the dealer holds
	if s.player.Hand().IsBusted() {
		r.Outcome = OutcomePlayerBust
		return
	}

	s.dealer.FlipCards()

	playerTotal := s.player.Hand().Total()
	dealerTotal := s.dealer.Hand().Total()
	switch {
	case s.dealer.Hand().IsBusted():
		r.Outcome = OutcomeDealerBust
	case playerTotal > dealerTotal:
		r.Outcome = OutcomePlayerWins
	case playerTotal < dealerTotal:
		r.Outcome = OutcomeDealerWins
	default:
		r.Outcome = OutcomePush
	}
}

// settle applies the outcome to the bankroll and reports it
func (r *round) settle() {
	s := r.session
	s.dealer.FlipCards()

	r.Adjustment = r.Outcome.Adjustment(r.Wager)
	s.bankroll += r.Adjustment
	s.stats.record(r.Outcome)

	r.log.WithFields(logrus.Fields{
		"outcome":    r.Outcome.String(),
		"adjustment": r.Adjustment,
		"bankroll":   s.bankroll,
		"playerHand": deck.CardsToString(*s.player.Hand()),
		"dealerHand": deck.CardsToString(*s.dealer.Hand()),
	}).Info("round settled")

	r.render()
	r.State = RoundStateComplete
}

// dealTo deals the top card to the participant
// It returns false if the deck is empty, which a single round cannot reach
func (r *round) dealTo(p Participant) bool {
	card := r.session.deck.Deal(p.Hand())
	if card == nil {
		r.log.WithField("participant", p.Name()).Warn("deck is empty, no card dealt")
		return false
	}

	r.log.WithFields(logrus.Fields{
		"participant": p.Name(),
		"card":        deck.CardToString(card),
		"total":       p.Hand().Total(),
	}).Debug("card dealt")
	return true
}

func (r *round) render() {
	r.session.renderer.Render(r.session.tableState(r))
}
