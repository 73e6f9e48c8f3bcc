package room

import (
	"blackjack-server/pkg/protocol"
	"context"

	"github.com/sirupsen/logrus"
)

// Dealer plays one session with one client
type Dealer struct {
	pitBoss *PitBoss
	client  *Client
	session *protocol.Session
	logger  logrus.FieldLogger
}

// NewDealer creates a new dealer object
func NewDealer(pitBoss *PitBoss, client *Client, opts protocol.Options) *Dealer {
	session := protocol.NewSession(client.conn, opts)
	client.ID = session.ID

	return &Dealer{
		pitBoss: pitBoss,
		client:  client,
		session: session,
		logger: pitBoss.logger.WithFields(logrus.Fields{
			"session":   session.ID,
			"remote":    client.RemoteAddr,
			"transport": client.Transport,
		}),
	}
}

// StartShift runs the session until the client leaves
// The client is registered with the pit boss for the duration of the shift.
func (d *Dealer) StartShift(ctx context.Context) error {
	d.pitBoss.ClientConnected(d.client)
	defer d.pitBoss.ClientDisconnected(d.client)

	d.logger.Debug("client connected")
	err := d.session.Run(ctx)
	if err != nil {
		d.logger.WithError(err).WithField("type", "exception").Error("session aborted")
	}

	d.logger.Debug("client disconnected")
	return err
}
