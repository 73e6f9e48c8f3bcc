package protocol

import (
	"errors"
	"sync"
)

// scriptedConn replays incoming messages and records everything sent
type scriptedConn struct {
	lock     sync.Mutex
	incoming []string
	sent     []string
	closed   int
	sendErr  error
	// returned once incoming is exhausted
	readErr error
}

func newScriptedConn(incoming ...string) *scriptedConn {
	return &scriptedConn{
		incoming: incoming,
		readErr:  ErrConnectionClosed,
	}
}

func (c *scriptedConn) Receive() (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if len(c.incoming) == 0 {
		return "", c.readErr
	}

	msg := c.incoming[0]
	c.incoming = c.incoming[1:]
	return msg, nil
}

func (c *scriptedConn) Send(text string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.sendErr != nil {
		return c.sendErr
	}

	c.sent = append(c.sent, text)
	return nil
}

func (c *scriptedConn) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.closed++
	return nil
}

func (c *scriptedConn) RemoteAddr() string {
	return "scripted"
}

// blockingConn blocks in Receive until it is closed
type blockingConn struct {
	once   sync.Once
	closed chan struct{}
}

func newBlockingConn() *blockingConn {
	return &blockingConn{closed: make(chan struct{})}
}

func (c *blockingConn) Receive() (string, error) {
	<-c.closed
	return "", errors.New("use of closed network connection")
}

func (c *blockingConn) Send(string) error {
	return nil
}

func (c *blockingConn) Close() error {
	c.once.Do(func() {
		close(c.closed)
	})

	return nil
}

func (c *blockingConn) RemoteAddr() string {
	return "blocking"
}
