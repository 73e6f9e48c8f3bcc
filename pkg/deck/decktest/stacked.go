// Package decktest provides helpers for tests that need a known deal order
package decktest

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"fmt"
)

type stacked struct {
	final   []deck.Card
	current []deck.Card
}

// Stacked returns a generator that, every time a shoe is shuffled with it,
// leaves the given cards on top in order. The rest of the shoe follows in canonical order.
// It panics if top is not drawn from a single deck.
func Stacked(top ...deck.Card) rng.Generator {
	rest := deck.Canonical()
	for _, card := range top {
		found := false
		for i, c := range rest {
			if c == card {
				rest = append(rest[:i], rest[i+1:]...)
				found = true
				break
			}
		}

		if !found {
			panic(fmt.Sprintf("cannot stack %s: not enough left in the deck", card))
		}
	}

	final := make([]deck.Card, 0, deck.ShoeSize)
	final = append(final, top...)
	final = append(final, rest...)

	return &stacked{final: final}
}

// Intn mirrors the shuffle: each call settles position n-1
func (s *stacked) Intn(n int) int {
	if n == deck.ShoeSize {
		s.current = deck.Canonical()
	}

	j := n - 1
	want := s.final[j]
	for i := 0; i <= j; i++ {
		if s.current[i] == want {
			s.current[i], s.current[j] = s.current[j], s.current[i]
			return i
		}
	}

	panic(fmt.Sprintf("inconsistent stacked shuffle at position %d", j))
}

// StackedSource returns a function that builds a new Stacked generator on every call
// A stacked generator keeps state across a whole shuffle, so concurrent sessions each need their own.
func StackedSource(top ...deck.Card) func() rng.Generator {
	// fail on the caller's line rather than inside a session
	_ = Stacked(top...)

	return func() rng.Generator {
		return Stacked(top...)
	}
}
