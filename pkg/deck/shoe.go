package deck

import (
	"blackjack-server/internal/rng"
	"errors"
)

// ErrEmptyShoe is an error when Draw() is attempted and there are no more cards
var ErrEmptyShoe = errors.New("shoe is empty")

// ShoeSize is the number of cards in a full shoe
const ShoeSize = 52

// Shoe is the drawable pool of cards for a single deck
type Shoe struct {
	Cards []Card `json:"cards"`
	rng   rng.Generator
}

// Canonical returns a new unshuffled deck, four of each rank
func Canonical() []Card {
	cards := make([]Card, 0, ShoeSize)
	for _, rank := range Ranks {
		for i := 0; i < 4; i++ {
			cards = append(cards, rank)
		}
	}

	return cards
}

// NewShoe returns a full, shuffled shoe
// If gen is nil, a crypto-backed generator is used
func NewShoe(gen rng.Generator) *Shoe {
	if gen == nil {
		gen = rng.Crypto{}
	}

	s := &Shoe{rng: gen}
	s.Reset()
	return s
}

// Reset replaces the contents of the shoe with a freshly built and shuffled deck
func (s *Shoe) Reset() {
	s.Cards = Canonical()
	s.shuffle()
}

func (s *Shoe) shuffle() {
	if s.rng == nil {
		s.rng = rng.Crypto{}
	}

	for j := len(s.Cards) - 1; j > 0; j-- {
		i := s.rng.Intn(j + 1)

		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, ErrEmptyShoe is returned
func (s *Shoe) Draw() (Card, error) {
	if len(s.Cards) == 0 {
		return "", ErrEmptyShoe
	}

	card := s.Cards[0]
	s.Cards = s.Cards[1:]

	return card, nil
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}
