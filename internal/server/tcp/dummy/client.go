package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/rawhttp/internal/server/tcp"
)

var _ tcp.Client = new(Client)

// Client returns the pieces it was initialised with one by one, and io.EOF afterwards.
// Written data is kept in Written.
type Client struct {
	data    [][]byte
	closed  bool
	Written []byte
}

func NewClient(data ...[]byte) *Client {
	return &Client{data: data}
}

// NewClientString is NewClient for string pieces.
func NewClientString(data ...string) *Client {
	pieces := make([][]byte, len(data))
	for i, piece := range data {
		pieces[i] = []byte(piece)
	}

	return NewClient(pieces...)
}

func (c *Client) Read() ([]byte, error) {
	if c.closed || len(c.data) == 0 {
		return nil, io.EOF
	}

	piece := c.data[0]
	c.data = c.data[1:]

	return piece, nil
}

func (c *Client) Write(b []byte) error {
	c.Written = append(c.Written, b...)
	return nil
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Scatter splits the data into pieces of at most n bytes.
func Scatter(data string, n int) (pieces []string) {
	for i := 0; i < len(data); i += n {
		pieces = append(pieces, data[i:min(i+n, len(data))])
	}

	return pieces
}
