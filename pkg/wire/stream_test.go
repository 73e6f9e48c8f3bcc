package wire

import (
	"blackjack-server/pkg/protocol"
	"context"
	"encoding/binary"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipe(readTimeout time.Duration) (server *Stream, client net.Conn) {
	s, c := net.Pipe()
	return NewStream(s, readTimeout), c
}

func TestStream_roundTrip(t *testing.T) {
	a := assert.New(t)
	s1, s2 := net.Pipe()
	dealer := NewStream(s1, 0)
	player := NewStream(s2, 0)
	defer dealer.Close()
	defer player.Close()

	go func() {
		_ = player.Send("New Hand")
		_ = player.Send("Dealer ♠ shows 10")
		_ = player.Send("")
	}()

	for _, expected := range []string{"New Hand", "Dealer ♠ shows 10", ""} {
		msg, err := dealer.Receive()
		a.NoError(err)
		a.Equal(expected, msg)
	}

	go func() {
		_ = dealer.Send("You have 5 6 making a score of 11")
	}()

	msg, err := player.Receive()
	a.NoError(err)
	a.Equal("You have 5 6 making a score of 11", msg)
}

func TestStream_connectionClosed(t *testing.T) {
	server, client := pipe(0)
	_ = client.Close()

	msg, err := server.Receive()
	assert.Equal(t, "", msg)
	assert.True(t, errors.Is(err, protocol.ErrConnectionClosed), "%v", err)

	// closing our own side
	server, _ = pipe(0)
	_ = server.Close()
	_, err = server.Receive()
	assert.True(t, errors.Is(err, protocol.ErrConnectionClosed), "%v", err)
}

func TestStream_unreadableMessage(t *testing.T) {
	server, client := pipe(0)
	defer server.Close()

	// a StringValue whose value is not valid UTF-8
	go func() {
		_, _ = client.Write([]byte{0x03, 0x0a, 0x01, 0xff})
	}()

	_, err := server.Receive()
	assert.True(t, errors.Is(err, protocol.ErrUnreadableMessage), "%v", err)
}

func TestStream_frameTooLarge(t *testing.T) {
	server, client := pipe(0)
	defer server.Close()

	go func() {
		_, _ = client.Write(binary.AppendUvarint(nil, MaxPayloadSize+1))
	}()

	_, err := server.Receive()
	assert.True(t, errors.Is(err, protocol.ErrUnreadableMessage), "%v", err)
}

func TestStream_readTimeout(t *testing.T) {
	server, client := pipe(50 * time.Millisecond)
	defer client.Close()

	start := time.Now()
	_, err := server.Receive()
	assert.True(t, errors.Is(err, protocol.ErrConnectionClosed), "%v", err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestStream_Close(t *testing.T) {
	server, _ := pipe(0)
	assert.NoError(t, server.Close())
	assert.NoError(t, server.Close())
	assert.Error(t, server.Send("Hit"))
}

func TestDial(t *testing.T) {
	a := assert.New(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}

		s := NewStream(conn, 0)
		defer s.Close()
		_ = s.Send("Connection Successful")
		msg, _ := s.Receive()
		_ = s.Send("echo " + msg)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	player, err := Dial(ctx, ln.Addr().String())
	require.NoError(t, err)
	defer player.Close()

	a.Equal(ln.Addr().String(), player.RemoteAddr())

	msg, err := player.Receive()
	a.NoError(err)
	a.Equal("Connection Successful", msg)

	a.NoError(player.Send("Stay"))
	msg, err = player.Receive()
	a.NoError(err)
	a.Equal("echo Stay", msg)

	_, err = player.Receive()
	a.True(errors.Is(err, protocol.ErrConnectionClosed), "%v", err)
}
