package protocol

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/history"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultHandshake is sent as soon as a connection opens
const DefaultHandshake = "Connection Successful"

// Options configures a session
type Options struct {
	// Handshake is the first payload sent; DefaultHandshake if empty
	Handshake string

	// NewGenerator is called once per session for the generator that shuffles its shoe
	// Sessions never share the returned generator. If nil, the shoe is crypto-backed
	NewGenerator func() rng.Generator

	// Recorder receives every completed hand; discarded if nil
	Recorder history.Recorder

	// Sink displays received intents and sent narrations locally
	Sink Sink

	Logger logrus.FieldLogger

	// TerminateOnWriteFailure ends the session on the first failed send instead of dropping the payload
	TerminateOnWriteFailure bool
}

// Session drives one player's game over one connection
// The session exclusively owns its game; it is not safe for concurrent use.
type Session struct {
	ID string

	conn   Conn
	game   *blackjack.Game
	opts   Options
	logger logrus.FieldLogger
}

// NewSession returns a session for the connection
func NewSession(conn Conn, opts Options) *Session {
	id := uuid.New().String()

	if opts.Handshake == "" {
		opts.Handshake = DefaultHandshake
	}

	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	logger := opts.Logger.WithFields(logrus.Fields{
		"session": id,
		"remote":  conn.RemoteAddr(),
	})

	if opts.Sink == nil {
		opts.Sink = LogSink{Logger: logger}
	}

	if opts.Recorder == nil {
		opts.Recorder = history.Noop{}
	}

	var gen rng.Generator
	if opts.NewGenerator != nil {
		gen = opts.NewGenerator()
	}

	return &Session{
		ID:     id,
		conn:   conn,
		game:   blackjack.NewGame(logger, deck.NewShoe(gen)),
		opts:   opts,
		logger: logger,
	}
}

// Game returns the session's game
func (s *Session) Game() *blackjack.Game {
	return s.game
}

// Run sends the handshake and processes intents until the player disconnects or the connection fails
// A closed or unreadable connection ends the session without an error. The connection is always closed on return.
func (s *Session) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer func() {
		close(stop)
		if err := s.conn.Close(); err != nil {
			s.logger.WithError(err).Debug("could not close connection")
		}

		s.logger.Debug("session ended")
	}()

	// a blocked Receive only returns once the connection is closed
	go func() {
		select {
		case <-ctx.Done():
			_ = s.conn.Close()
		case <-stop:
		}
	}()

	if err := s.send(s.opts.Handshake); err != nil {
		return err
	}

	for {
		message, err := s.conn.Receive()
		if err != nil {
			if errors.Is(err, ErrConnectionClosed) || errors.Is(err, ErrUnreadableMessage) || ctx.Err() != nil {
				s.logger.WithError(err).Debug("connection terminated")
				s.opts.Sink.Display("connection terminated")
				return nil
			}

			return err
		}

		done, err := s.Handle(ctx, message)
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}
}

// Handle applies a single message from the player
// done is true once the player has disconnected.
func (s *Session) Handle(ctx context.Context, message string) (done bool, err error) {
	s.opts.Sink.Display(message)

	intent, err := ParseIntent(message)
	if err != nil {
		s.logger.WithError(err).Warn("ignoring message")
		return false, nil
	}

	var narration []string
	switch intent {
	case IntentHit:
		narration, err = s.game.Hit()
	case IntentStay:
		narration, err = s.game.Stay()
	case IntentNewHand:
		s.game.ResetShoe()
		narration, err = s.game.StartHand()
	case IntentDisconnect:
		return true, s.send(string(IntentDisconnect))
	}

	if err != nil {
		return false, fmt.Errorf("could not process %s: %w", intent, err)
	}

	if result, isOver := s.game.GetEndOfHandDetails(); isOver {
		s.record(ctx, result)
	}

	for _, text := range narration {
		if err := s.send(text); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (s *Session) send(text string) error {
	if err := s.conn.Send(text); err != nil {
		err = fmt.Errorf("%w: %v", ErrWriteFailure, err)
		s.logger.WithError(err).Error("could not send narration")
		if s.opts.TerminateOnWriteFailure {
			return err
		}

		return nil
	}

	s.opts.Sink.Display("SERVER>>> " + text)
	return nil
}

func (s *Session) record(ctx context.Context, result *blackjack.HandResult) {
	record, err := s.opts.Recorder.RecordHand(ctx, s.ID, result)
	if err != nil {
		s.logger.WithError(err).WithField("hand", result.HandNumber).Error("could not record hand")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"hand":    result.HandNumber,
		"record":  record.ID,
		"outcome": result.Outcome.String(),
	}).Info("hand complete")
}
