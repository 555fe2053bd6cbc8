package http1

import (
	"strings"

	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/codec"
	"github.com/indigo-web/rawhttp/kv"
)

// Decoder turns raw frames into requests. It holds no mutable state, so a single
// instance may be shared between any number of goroutines.
type Decoder struct {
	cfg    *config.Config
	codecs codec.Codecs
}

func NewDecoder(cfg *config.Config) *Decoder {
	return &Decoder{
		cfg:    cfg,
		codecs: codec.Default(),
	}
}

// Decode splits the data into a frame and decodes it.
func (d *Decoder) Decode(data []byte) (*http.Request, error) {
	return d.DecodeFrame(Split(data))
}

// DecodeFrame returns either a complete request or the first error encountered, never
// both. The request doesn't reference the frame, so the frame may be reused afterwards.
func (d *Decoder) DecodeFrame(frame Frame) (*http.Request, error) {
	// copying once detaches the request from the underlying buffer, everything
	// below is just a view into these strings
	head, body := string(frame.Head), string(frame.Body)
	lines := strings.Split(head, "\r\n")

	params := kv.NewExact(d.cfg.URI.ParamsPrealloc)
	m, path, err := parseRequestLine(strings.TrimSpace(lines[0]), params)
	if err != nil {
		return nil, err
	}

	headers := kv.NewPrealloc(d.cfg.Headers.Number.Default)
	if err = parseHeaders(lines[1:], headers, d.cfg.Headers.Number.Maximal); err != nil {
		return nil, err
	}

	host, found := headers.Get("host")
	if !found {
		return nil, status.ErrMissingHostHeader
	}

	contentType, present := headers.Get("content-type")
	ct, err := ResolveContentType(contentType, present)
	if err != nil {
		return nil, err
	}

	requestBody, err := decodeBody(d.cfg, d.codecs, headers, ct, body)
	if err != nil {
		return nil, err
	}

	return &http.Request{
		Method:      m,
		Host:        host,
		Path:        path,
		Params:      params,
		Headers:     headers,
		ContentType: ct,
		Body:        requestBody,
	}, nil
}
