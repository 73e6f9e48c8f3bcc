package deck

import "strings"

// Hand represents an ordered collection of cards in the order they were drawn
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// FirstCard returns the first card dealt into the hand, or an empty card if there isn't one
func (h Hand) FirstCard() Card {
	if len(h) == 0 {
		return ""
	}

	return h[0]
}

// String returns the cards separated by a space, e.g., "5 6 2"
func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
