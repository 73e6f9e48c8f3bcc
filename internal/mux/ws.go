package mux

import (
	"blackjack-server/pkg/protocol"
	"blackjack-server/pkg/room"
	"fmt"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		ws := newWSConn(conn, r.RemoteAddr)
		go ws.pingLoop()

		_ = m.pitBoss.ServeConn(r.Context(), ws, room.TransportWebSocket)
	}
}

// wsConn is a protocol.Conn over a websocket
// Intents and narrations travel as text frames.
type wsConn struct {
	conn       *websocket.Conn
	remoteAddr string
	closeOnce  sync.Once
	closed     chan struct{}
}

var _ protocol.Conn = (*wsConn)(nil)

func newWSConn(conn *websocket.Conn, remoteAddr string) *wsConn {
	return &wsConn{
		conn:       conn,
		remoteAddr: remoteAddr,
		closed:     make(chan struct{}),
	}
}

func (c *wsConn) Receive() (string, error) {
	messageType, data, err := c.conn.ReadMessage()
	if err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logrus.WithError(err).WithField("remote", c.remoteAddr).Debug("websocket closed unexpectedly")
		}

		return "", fmt.Errorf("%w: %v", protocol.ErrConnectionClosed, err)
	}

	if messageType != websocket.TextMessage {
		return "", fmt.Errorf("%w: expected a text frame", protocol.ErrUnreadableMessage)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid UTF-8", protocol.ErrUnreadableMessage)
	}

	return string(data), nil
}

func (c *wsConn) Send(text string) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, []byte(text))
}

func (c *wsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		err = c.conn.Close()
	})

	return err
}

func (c *wsConn) RemoteAddr() string {
	return c.remoteAddr
}

// pingLoop keeps the read deadline alive until the connection is closed
func (c *wsConn) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}
