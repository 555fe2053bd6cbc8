package rawhttp

import (
	"net"

	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/internal/protocol/http1"
	"github.com/indigo-web/rawhttp/internal/server/tcp"
)

// Frame is a raw request split into the head and the body.
type Frame = http1.Frame

var defaultDecoder = http1.NewDecoder(config.Default())

// Decode decodes a single raw request using the default configuration. Everything after
// the first empty line is treated as the body, no matter what Content-Length says.
func Decode(data []byte) (*http.Request, error) {
	return defaultDecoder.Decode(data)
}

// DecodeFrame decodes an already split frame.
func DecodeFrame(cfg *config.Config, frame Frame) (*http.Request, error) {
	return http1.NewDecoder(cfg).DecodeFrame(frame)
}

// ReadRequest reads exactly one request frame from the connection and decodes it. The
// connection is left open.
func ReadRequest(cfg *config.Config, conn net.Conn) (*http.Request, error) {
	client := tcp.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
	frame, err := http1.NewReader(cfg, client).Read()
	if err != nil {
		return nil, err
	}

	return http1.NewDecoder(cfg).DecodeFrame(frame)
}
