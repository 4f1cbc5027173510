// Package netplay is the peer side of the relay link: it dials the relay,
// keeps a read pump feeding decoded frames into a channel, and sends the
// local side's frame each turn. The game loop polls it without blocking.
package netplay

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gridlock/internal/protocol"
)

// Conn is an established lockstep link. Closed is signalled once and means
// the session is unrecoverable; lockstep cannot survive a lost peer.
type Conn struct {
	ws     *websocket.Conn
	log    *zap.Logger
	frames chan protocol.Frame
	closed chan struct{}
}

// Dial connects to the relay and starts the read pump. The connection is
// usable immediately; the opponent may still be absent, in which case frames
// simply do not arrive yet.
func Dial(ctx context.Context, url string, log *zap.Logger) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("netplay: dial %s: %w", url, err)
	}
	c := &Conn{
		ws:     ws,
		log:    log,
		frames: make(chan protocol.Frame, 256),
		closed: make(chan struct{}),
	}
	go c.readPump()
	return c, nil
}

func (c *Conn) readPump() {
	defer close(c.closed)
	for {
		_, msg, err := c.ws.ReadMessage()
		if err != nil {
			c.log.Warn("read pump stopped", zap.Error(err))
			return
		}
		f, err := protocol.DecodeFrame(string(msg))
		if err != nil {
			// A malformed line is dropped, never fatal: the peer's turn
			// resolves as if it had sent the idle keepalive. Only real
			// socket errors end the session.
			c.log.Warn("dropping malformed frame", zap.Error(err))
			f = protocol.Frame{Idle: true}
		}
		c.frames <- f
	}
}

// Poll drains every frame that has arrived so far without blocking.
func (c *Conn) Poll() []protocol.Frame {
	var out []protocol.Frame
	for {
		select {
		case f := <-c.frames:
			out = append(out, f)
		default:
			return out
		}
	}
}

// SendCommand transmits the local command stamped with its turn.
func (c *Conn) SendCommand(turn int, cmd protocol.Command) error {
	return c.send(protocol.EncodeFrame(turn, cmd.Text()))
}

// SendIdle transmits the keepalive for a turn with no command.
func (c *Conn) SendIdle() error {
	return c.send(protocol.IdleFrame)
}

func (c *Conn) send(s string) error {
	if err := c.ws.WriteMessage(websocket.TextMessage, []byte(s)); err != nil {
		return fmt.Errorf("netplay: send: %w", err)
	}
	return nil
}

// Closed is signalled when the link is dead. The session must end; there is
// no rejoin.
func (c *Conn) Closed() <-chan struct{} { return c.closed }

func (c *Conn) Close() error { return c.ws.Close() }
