package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a value is not in the rank alphabet
var ErrInvalidCard = errors.New("not a legal card")

// Card is an individual playing card
// Suits are irrelevant to blackjack, so a card is only its rank
type Card string

// rank constants
const (
	Ace   Card = "A"
	Two   Card = "2"
	Three Card = "3"
	Four  Card = "4"
	Five  Card = "5"
	Six   Card = "6"
	Seven Card = "7"
	Eight Card = "8"
	Nine  Card = "9"
	Ten   Card = "10"
	Jack  Card = "J"
	Queen Card = "Q"
	King  Card = "K"
)

// Ranks is the rank alphabet in canonical order
var Ranks = []Card{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

func (c Card) String() string {
	return string(c)
}

// IsValid returns true if the card is in the rank alphabet
func (c Card) IsValid() bool {
	for _, rank := range Ranks {
		if c == rank {
			return true
		}
	}

	return false
}

// CardFromString returns a Card from the string, e.g., "A", "10" or "q"
func CardFromString(s string) (Card, error) {
	card := Card(strings.ToUpper(strings.TrimSpace(s)))
	if !card.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return card, nil
}

// CardsFromString parses a space or comma separated list such as "5 6 2" or "A,K"
func CardsFromString(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	cards := make([]Card, len(fields))
	for i, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}
