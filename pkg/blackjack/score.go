package blackjack

import (
	"blackjack-server/pkg/deck"
	"fmt"
	"strconv"
)

// Bust is the highest score a hand can have without busting
const Bust = 21

// Score returns the blackjack point total of the hand
// As many aces as possible count as 11 without taking the hand over 21; the rest count as 1.
// The order of the cards does not matter.
func Score(hand []deck.Card) (int, error) {
	sum := 0
	aces := 0
	for _, card := range hand {
		if !card.IsValid() {
			return 0, fmt.Errorf("%w: %q", deck.ErrInvalidCard, card)
		}

		switch card {
		case deck.Ace:
			aces++
		case deck.Ten, deck.Jack, deck.Queen, deck.King:
			sum += 10
		default:
			points, err := strconv.Atoi(string(card))
			if err != nil {
				return 0, fmt.Errorf("%w: %q", deck.ErrInvalidCard, card)
			}

			sum += points
		}
	}

	for soft := aces; soft > 0; soft-- {
		if total := sum + 11*soft + (aces - soft); total <= Bust {
			return total, nil
		}
	}

	return sum + aces, nil
}

// IsBusted returns true if the score is over 21
func IsBusted(score int) bool {
	return score > Bust
}
