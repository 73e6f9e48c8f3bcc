package room

import (
	"blackjack-server/pkg/protocol"
	"fmt"
	"time"
)

// Transports a client can connect through
const (
	TransportTCP       = "tcp"
	TransportWebSocket = "websocket"
)

// Client is a player connected to the server
type Client struct {
	// ID is the ID of the session serving the client
	ID          string    `json:"id"`
	RemoteAddr  string    `json:"remoteAddr"`
	Transport   string    `json:"transport"`
	ConnectedAt time.Time `json:"connectedAt"`

	conn protocol.Conn
}

// NewClient returns a new client object
func NewClient(conn protocol.Conn, transport string) *Client {
	return &Client{
		RemoteAddr:  conn.RemoteAddr(),
		Transport:   transport,
		ConnectedAt: time.Now(),
		conn:        conn,
	}
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Transport, c.RemoteAddr)
}
