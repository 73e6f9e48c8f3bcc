// Package wire carries text payloads over a TCP connection
// Every payload is a varint length-delimited google.protobuf.StringValue.
package wire

import (
	"blackjack-server/pkg/protocol"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// MaxPayloadSize bounds a single frame
const MaxPayloadSize = 64 * 1024

const writeWait = time.Second * 10

// Stream is a protocol.Conn over a net.Conn
type Stream struct {
	conn        net.Conn
	reader      *bufio.Reader
	readTimeout time.Duration
	closeOnce   sync.Once
	closeErr    error
}

var _ protocol.Conn = (*Stream)(nil)

// NewStream wraps conn
// If readTimeout is > 0, Receive gives up after waiting that long for a payload.
func NewStream(conn net.Conn, readTimeout time.Duration) *Stream {
	return &Stream{
		conn:        conn,
		reader:      bufio.NewReader(conn),
		readTimeout: readTimeout,
	}
}

// Dial connects to a dealer
func Dial(ctx context.Context, addr string) (*Stream, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	return NewStream(conn, 0), nil
}

// Receive reads the next payload
func (s *Stream) Receive() (string, error) {
	if s.readTimeout > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
			return "", fmt.Errorf("%w: %v", protocol.ErrConnectionClosed, err)
		}
	}

	var msg wrapperspb.StringValue
	opts := protodelim.UnmarshalOptions{MaxSize: MaxPayloadSize}
	if err := opts.UnmarshalFrom(s.reader, &msg); err != nil {
		if isClosed(err) {
			return "", fmt.Errorf("%w: %v", protocol.ErrConnectionClosed, err)
		}

		return "", fmt.Errorf("%w: %v", protocol.ErrUnreadableMessage, err)
	}

	return msg.GetValue(), nil
}

// Send writes a payload
func (s *Stream) Send(text string) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_, err := protodelim.MarshalTo(s.conn, wrapperspb.String(text))
	return err
}

// Close closes the underlying connection
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})

	return s.closeErr
}

// RemoteAddr returns the address of the peer
func (s *Stream) RemoteAddr() string {
	if addr := s.conn.RemoteAddr(); addr != nil {
		return addr.String()
	}

	return ""
}

// isClosed reports whether err means the stream has ended, including read timeouts
func isClosed(err error) bool {
	var netErr net.Error
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed) ||
		errors.As(err, &netErr)
}
