package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	a := assert.New(t)

	var h Hand
	a.Equal(Card(""), h.FirstCard())
	a.Equal("", h.String())

	h.AddCard(Nine)
	h.AddCard(Seven)
	h.AddCard(Five)
	a.Equal(Nine, h.FirstCard())
	a.Equal("9 7 5", h.String())

	clone := h.Clone()
	clone[0] = King
	a.Equal(Nine, h.FirstCard())
	a.Equal("K 7 5", clone.String())
}
