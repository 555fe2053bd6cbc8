package tcp

import (
	"net"
	"time"
)

type Client interface {
	Read() ([]byte, error)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	buff    []byte
	conn    net.Conn
	timeout time.Duration
}

// NewClient wraps the connection. Every read refreshes the read deadline and returns a
// slice of buff, which is overwritten by the next read.
func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		buff:    buff,
		conn:    conn,
		timeout: timeout,
	}
}

func (c *client) Read() ([]byte, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)

	return c.buff[:n], err
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
