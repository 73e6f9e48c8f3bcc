package protocol

import "errors"

// ErrConnectionClosed is returned by Receive when the stream ends or the peer goes away
var ErrConnectionClosed = errors.New("connection closed")

// ErrUnreadableMessage is returned by Receive when a payload is not text
var ErrUnreadableMessage = errors.New("unreadable message")

// ErrWriteFailure wraps a failed Send
var ErrWriteFailure = errors.New("could not write message")

// Conn is a persistent, bidirectional stream of text payloads
// Both the dealer and the player side of a connection use it.
type Conn interface {
	// Receive blocks until the next payload arrives
	// Implementations wrap ErrConnectionClosed or ErrUnreadableMessage where they apply
	Receive() (string, error)

	// Send writes a single payload
	Send(text string) error

	// Close releases the connection; it is safe to call more than once
	Close() error

	// RemoteAddr identifies the peer for logging
	RemoteAddr() string
}
