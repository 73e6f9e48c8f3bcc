package blackjack

import (
	"blackjack-server/pkg/deck"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// DealerStandsOn is the score at which the dealer stops drawing
const DealerStandsOn = 17

// State is the lifecycle state of a game
type State int

// State constants
const (
	StateNotStarted State = iota
	StateInProgress
)

func (s State) String() string {
	if s == StateInProgress {
		return "in progress"
	}

	return "not started"
}

// HandResult is the final state of a hand
type HandResult struct {
	HandNumber  int       `json:"handNumber"`
	Outcome     Outcome   `json:"outcome"`
	PlayerScore int       `json:"playerScore"`
	PlayerHand  deck.Hand `json:"playerHand"`
	DealerScore int       `json:"dealerScore"`
	DealerHand  deck.Hand `json:"dealerHand"`
	Ended       time.Time `json:"ended"`
}

// Game is one player against the dealer, one hand at a time
// A game is owned by a single session and is not safe for concurrent use
type Game struct {
	shoe        *deck.Shoe
	playerHand  deck.Hand
	dealerHand  deck.Hand
	playerScore int
	dealerScore int
	state       State
	handNumber  int
	endOfHand   *HandResult
	logger      logrus.FieldLogger
}

// NewGame returns a game that deals from the given shoe
func NewGame(logger logrus.FieldLogger, shoe *deck.Shoe) *Game {
	return &Game{
		shoe:   shoe,
		state:  StateNotStarted,
		logger: logger,
	}
}

// State returns the current state
func (g *Game) State() State {
	return g.state
}

// PlayerHand returns a copy of the player's cards
func (g *Game) PlayerHand() deck.Hand {
	return g.playerHand.Clone()
}

// DealerHand returns a copy of the dealer's cards
func (g *Game) DealerHand() deck.Hand {
	return g.dealerHand.Clone()
}

// Scores returns the cached player and dealer scores
func (g *Game) Scores() (playerScore, dealerScore int) {
	return g.playerScore, g.dealerScore
}

// ResetShoe replaces the shoe with a full, freshly shuffled deck
func (g *Game) ResetShoe() {
	g.shoe.Reset()
}

// StartHand deals two cards each to the player and the dealer
// If the player is dealt 21, the hand ends immediately and only the outcome is narrated.
func (g *Game) StartHand() ([]string, error) {
	g.playerHand = deck.Hand{}
	g.dealerHand = deck.Hand{}
	g.endOfHand = nil
	g.handNumber++

	for _, hand := range []*deck.Hand{&g.playerHand, &g.playerHand, &g.dealerHand, &g.dealerHand} {
		if err := g.drawInto(hand); err != nil {
			return nil, err
		}
	}

	if err := g.updateScores(); err != nil {
		return nil, err
	}

	g.state = StateInProgress
	g.logger.WithFields(logrus.Fields{
		"hand":        g.handNumber,
		"playerHand":  g.playerHand.String(),
		"playerScore": g.playerScore,
		"dealerHand":  g.dealerHand.String(),
	}).Debug("hand started")

	if g.playerScore == Bust {
		return g.endHand()
	}

	return []string{
		openingNarration(g.playerHand, g.playerScore),
		dealerShowingNarration(g.dealerHand),
	}, nil
}

// Hit draws a card for the player
// It does nothing unless a hand is in progress
func (g *Game) Hit() ([]string, error) {
	if g.state != StateInProgress {
		return nil, nil
	}

	if err := g.drawInto(&g.playerHand); err != nil {
		return nil, err
	}

	score, err := Score(g.playerHand)
	if err != nil {
		return nil, err
	}

	g.playerScore = score
	if g.playerScore >= Bust {
		return g.endHand()
	}

	return []string{hitNarration(g.playerHand, g.playerScore, g.dealerHand)}, nil
}

// Stay ends the player's turn
// It does nothing unless a hand is in progress
func (g *Game) Stay() ([]string, error) {
	if g.state != StateInProgress {
		return nil, nil
	}

	return g.endHand()
}

// GetEndOfHandDetails returns the result of the hand that just ended
// Each ended hand is reported once; otherwise nil and false are returned
func (g *Game) GetEndOfHandDetails() (*HandResult, bool) {
	result := g.endOfHand
	g.endOfHand = nil

	return result, result != nil
}

func (g *Game) endHand() ([]string, error) {
	g.state = StateNotStarted

	if err := g.playDealerStrategy(); err != nil {
		return nil, err
	}

	result := &HandResult{
		HandNumber:  g.handNumber,
		Outcome:     DetermineOutcome(g.playerScore, g.dealerScore),
		PlayerScore: g.playerScore,
		PlayerHand:  g.playerHand.Clone(),
		DealerScore: g.dealerScore,
		DealerHand:  g.dealerHand.Clone(),
		Ended:       time.Now(),
	}

	g.endOfHand = result
	g.logger.WithFields(logrus.Fields{
		"hand":        result.HandNumber,
		"outcome":     result.Outcome.String(),
		"playerScore": result.PlayerScore,
		"dealerScore": result.DealerScore,
	}).Debug("hand ended")

	return []string{result.Narration()}, nil
}

// playDealerStrategy draws for the dealer until the dealer has 17 or more
func (g *Game) playDealerStrategy() error {
	for g.dealerScore < DealerStandsOn {
		if err := g.drawInto(&g.dealerHand); err != nil {
			return err
		}

		score, err := Score(g.dealerHand)
		if err != nil {
			return err
		}

		g.dealerScore = score
	}

	return nil
}

func (g *Game) drawInto(hand *deck.Hand) error {
	card, err := g.shoe.Draw()
	if err != nil {
		return fmt.Errorf("could not deal hand %d: %w", g.handNumber, err)
	}

	hand.AddCard(card)
	return nil
}

func (g *Game) updateScores() error {
	playerScore, err := Score(g.playerHand)
	if err != nil {
		return err
	}

	dealerScore, err := Score(g.dealerHand)
	if err != nil {
		return err
	}

	g.playerScore = playerScore
	g.dealerScore = dealerScore
	return nil
}
