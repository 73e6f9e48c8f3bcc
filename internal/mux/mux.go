// Package mux serves the HTTP surface of the dealer: health, hand history and the websocket transport
package mux

import (
	"blackjack-server/pkg/history"
	"blackjack-server/pkg/room"
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	pitBoss  *room.PitBoss
	recorder history.Recorder
	config   config
}

type config struct {
	// maxRows caps the rows parameter of /hands
	maxRows int
}

// NewMux returns a new HTTP mux
// A nil recorder serves an empty history.
func NewMux(version string, pitBoss *room.PitBoss, recorder history.Recorder, maxRows int) *Mux {
	if recorder == nil {
		recorder = history.Noop{}
	}

	if maxRows <= 0 {
		maxRows = history.DefaultRecentLimit
	}

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		pitBoss:  pitBoss,
		recorder: recorder,
		config: config{
			maxRows: maxRows,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/hands").Handler(this.getHands())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
