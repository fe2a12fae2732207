package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	sendBuffer   = 64
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
	maxMsgSize   = 256 << 10
)

// ClientConn is one websocket client. Sends never block: a client that
// cannot keep up loses messages.
type ClientConn struct {
	ws      *websocket.Conn
	send    chan []byte
	done    chan struct{}
	limiter *rate.Limiter

	closeOnce sync.Once
}

func newClientConn(ws *websocket.Conn, limiter *rate.Limiter) *ClientConn {
	return &ClientConn{
		ws:      ws,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		limiter: limiter,
	}
}

func (c *ClientConn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.ws != nil {
			_ = c.ws.Close()
		}
	})
}

// Send reports whether env was queued.
func (c *ClientConn) Send(env Envelope) bool {
	b, err := json.Marshal(env)
	if err != nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- b:
		return true
	default:
		return false
	}
}

func (c *ClientConn) SendError(err error) {
	c.Send(errorEnvelope(err))
}

func (c *ClientConn) allow() bool {
	return c.limiter == nil || c.limiter.Allow()
}

// writeLoop drains send until the connection closes.
func (c *ClientConn) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}
