// Package room dispatches player connections to dealers
package room

import (
	"blackjack-server/pkg/protocol"
	"blackjack-server/pkg/wire"
	"context"
	"errors"
	"net"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// delay bounds between retries of a failed Accept
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Options configures a PitBoss
type Options struct {
	// MaxSessions is the number of TCP sessions served at once; values below 1 mean 1
	MaxSessions int

	// ReadTimeout bounds the wait for an intent; 0 waits forever
	ReadTimeout time.Duration

	// Session is passed to every session
	Session protocol.Options

	Logger logrus.FieldLogger
}

// PitBoss is responsible for dispatching players to dealers
type PitBoss struct {
	opts    Options
	logger  logrus.FieldLogger
	slots   chan struct{}
	clients map[*Client]bool
	lock    sync.RWMutex
	wg      sync.WaitGroup

	connections uint64
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(opts Options) *PitBoss {
	if opts.MaxSessions < 1 {
		opts.MaxSessions = 1
	}

	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	if opts.Session.Logger == nil {
		opts.Session.Logger = opts.Logger
	}

	return &PitBoss{
		opts:    opts,
		logger:  opts.Logger,
		slots:   make(chan struct{}, opts.MaxSessions),
		clients: make(map[*Client]bool),
	}
}

// Serve accepts connections from ln until ctx is cancelled or the listener is closed
// A slot is taken before accepting, so no more than MaxSessions connections are accepted at once.
// Other accept errors are retried with a growing delay. Serve closes ln and waits for running sessions to end before returning.
func (p *PitBoss) Serve(ctx context.Context, ln net.Listener) error {
	defer p.wg.Wait()
	defer ln.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-stop:
		}
	}()

	log := p.logger.WithField("addr", ln.Addr().String())
	log.Info("waiting for connections")

	var tempDelay time.Duration
	for {
		select {
		case p.slots <- struct{}{}:
		case <-ctx.Done():
			return nil
		}

		conn, err := ln.Accept()
		if err != nil {
			<-p.slots
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				log.Info("no longer accepting connections")
				return nil
			}

			if tempDelay == 0 {
				tempDelay = minAcceptDelay
			} else if tempDelay *= 2; tempDelay > maxAcceptDelay {
				tempDelay = maxAcceptDelay
			}

			log.WithError(err).WithField("retry", tempDelay).Warn("could not accept connection")
			select {
			case <-time.After(tempDelay):
			case <-ctx.Done():
			}

			continue
		}
		tempDelay = 0

		n := atomic.AddUint64(&p.connections, 1)
		log.WithField("count", n).Infof("connection %d received from %s", n, conn.RemoteAddr())

		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			defer func() { <-p.slots }()

			_ = p.ServeConn(ctx, wire.NewStream(conn, p.opts.ReadTimeout), TransportTCP)
		}()
	}
}

// ServeConn plays a session over conn and blocks until it ends
// It does not take a slot; callers outside Serve bound their own concurrency.
func (p *PitBoss) ServeConn(ctx context.Context, conn protocol.Conn, transport string) error {
	return NewDealer(p, NewClient(conn, transport), p.opts.Session).StartShift(ctx)
}

// Connections returns how many TCP connections have been accepted
func (p *PitBoss) Connections() uint64 {
	return atomic.LoadUint64(&p.connections)
}

// ClientConnected is called when a session starts
func (p *PitBoss) ClientConnected(client *Client) {
	p.lock.Lock()
	p.clients[client] = true
	p.lock.Unlock()
}

// ClientDisconnected is called when a session ends
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.lock.Lock()
	delete(p.clients, client)
	p.lock.Unlock()
}

// ActiveSessions returns the number of sessions in progress
func (p *PitBoss) ActiveSessions() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.clients)
}

// Clients will return a slice of connected (at the time) clients, oldest first
func (p *PitBoss) Clients() []Client {
	p.lock.RLock()
	clients := make([]Client, 0, len(p.clients))
	for client := range p.clients {
		clients = append(clients, *client)
	}
	p.lock.RUnlock()

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].ConnectedAt.Before(clients[j].ConnectedAt)
	})

	return clients
}
