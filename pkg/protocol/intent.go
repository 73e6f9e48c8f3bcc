package protocol

import (
	"errors"
	"fmt"
)

// ErrUnknownIntent is returned for text that is not one of the four intents
var ErrUnknownIntent = errors.New("unknown intent")

// Intent is an action sent by the player
type Intent string

// Intent constants; the wire text is the literal value
const (
	IntentHit        Intent = "Hit"
	IntentStay       Intent = "Stay"
	IntentNewHand    Intent = "New Hand"
	IntentDisconnect Intent = "Disconnect"
)

// Intents lists every intent a player front end can offer
var Intents = []Intent{IntentHit, IntentStay, IntentNewHand, IntentDisconnect}

// ParseIntent returns the intent for the exact wire text
func ParseIntent(s string) (Intent, error) {
	for _, intent := range Intents {
		if s == string(intent) {
			return intent, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownIntent, s)
}
