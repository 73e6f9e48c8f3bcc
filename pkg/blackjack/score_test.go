package blackjack

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cards(t *testing.T, s string) []deck.Card {
	t.Helper()

	c, err := deck.CardsFromString(s)
	if err != nil {
		t.Fatal(err)
	}

	return c
}

func assertScore(t *testing.T, expected int, hand string) {
	t.Helper()

	score, err := Score(cards(t, hand))
	assert.NoError(t, err)
	assert.Equal(t, expected, score, hand)
}

func TestScore(t *testing.T) {
	assertScore(t, 0, "")
	assertScore(t, 11, "5 6")
	assertScore(t, 20, "K Q")
	assertScore(t, 20, "10 J")
	assertScore(t, 16, "9 7")
	assertScore(t, 21, "9 7 5")
	assertScore(t, 26, "10 6 K")
}

func TestScore_softAces(t *testing.T) {
	assertScore(t, 11, "A")
	assertScore(t, 12, "A A")
	assertScore(t, 13, "A A A A 9")
	assertScore(t, 21, "A K")
	assertScore(t, 21, "A A 9")
	assertScore(t, 21, "A A A 9 9")
	assertScore(t, 14, "A A A A")
	assertScore(t, 21, "K Q A")
	assertScore(t, 17, "A 6")
	assertScore(t, 17, "A 6 10")
}

func TestScore_bustedWithAce(t *testing.T) {
	// every ace counts as 1 once the hand is busted
	assertScore(t, 26, "K Q 5 A")
	assertScore(t, 27, "K Q 5 A A")
}

func TestScore_invalidCard(t *testing.T) {
	for _, bad := range []deck.Card{"", "1", "11", "Z", "+5", "a"} {
		score, err := Score([]deck.Card{deck.King, bad})
		assert.Equal(t, 0, score)
		assert.True(t, errors.Is(err, deck.ErrInvalidCard), "card %q", bad)
	}
}

func permutations(hand []deck.Card) [][]deck.Card {
	if len(hand) <= 1 {
		return [][]deck.Card{append([]deck.Card{}, hand...)}
	}

	var perms [][]deck.Card
	for i := range hand {
		rest := make([]deck.Card, 0, len(hand)-1)
		rest = append(rest, hand[:i]...)
		rest = append(rest, hand[i+1:]...)
		for _, p := range permutations(rest) {
			perms = append(perms, append([]deck.Card{hand[i]}, p...))
		}
	}

	return perms
}

func TestScore_orderIndependent(t *testing.T) {
	for _, hand := range []string{"A A 9", "A 5 K A", "A A A 9 9", "2 A 7 A J", "A A A A 9"} {
		expected, err := Score(cards(t, hand))
		assert.NoError(t, err)

		for _, perm := range permutations(cards(t, hand)) {
			score, err := Score(perm)
			assert.NoError(t, err)
			assert.Equal(t, expected, score, deck.Hand(perm).String())
		}
	}
}

// softTotal is the textbook formulation: aces start at 11 and drop to 1 while the hand is busted
func softTotal(hand []deck.Card) int {
	total, aces := 0, 0
	for _, card := range hand {
		switch card {
		case deck.Ace:
			total += 11
			aces++
		case deck.Ten, deck.Jack, deck.Queen, deck.King:
			total += 10
		default:
			total += int(card[0] - '0')
		}
	}

	for total > Bust && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

func TestScore_matchesReference(t *testing.T) {
	gen := rng.Seeded(99)
	for i := 0; i < 2000; i++ {
		shoe := deck.NewShoe(gen)
		hand := shoe.Cards[:1+gen.Intn(7)]

		first, err := Score(hand)
		assert.NoError(t, err)
		second, _ := Score(hand)

		assert.Equal(t, first, second)
		assert.Equal(t, softTotal(hand), first, deck.Hand(hand).String())
	}
}
