package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"Hit", "Stay", "New Hand", "Disconnect"} {
		intent, err := ParseIntent(s)
		a.NoError(err)
		a.Equal(Intent(s), intent)
	}

	for _, s := range []string{"", "hit", "HIT", " Hit", "NewHand", "Double Down"} {
		intent, err := ParseIntent(s)
		a.Equal(Intent(""), intent)
		a.True(errors.Is(err, ErrUnknownIntent), s)
	}
}
