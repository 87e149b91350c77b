package database

import (
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

// Conn is the slice of a transport connection the rooms need.
type Conn interface {
	ID() int64
	Write(data []byte) error
}

// client owns a connection's outbound queue. Sends never block: a full
// queue or a dead connection drops the message.
type client struct {
	conn   Conn
	out    chan []byte
	once   sync.Once
	mu     sync.RWMutex
	closed bool
	dead   bool
}

func newClient(conn Conn, buffer int) *client {
	c := &client{
		conn: conn,
		out:  make(chan []byte, buffer),
	}
	async.Async(c.writeLoop)
	return c
}

func (c *client) writeLoop() {
	for data := range c.out {
		if c.isDead() {
			continue
		}
		if err := c.conn.Write(data); err != nil {
			log.Errorf("conn %d write failed, dropping: %v\n", c.conn.ID(), err)
			c.mu.Lock()
			c.dead = true
			c.mu.Unlock()
		}
	}
}

func (c *client) send(data []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed || c.dead {
		return false
	}
	select {
	case c.out <- data:
		return true
	default:
		log.Infof("conn %d queue full, message dropped\n", c.conn.ID())
		return false
	}
}

func (c *client) isDead() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dead
}

func (c *client) close() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.out)
		c.mu.Unlock()
	})
}
