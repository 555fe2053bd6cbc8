package http1

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/server/tcp"
	"github.com/indigo-web/rawhttp/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// Reader accumulates a single request frame from the client. It reads until the head is
// complete and, if the head declares Content-Length, until the whole body is received.
// Without Content-Length the body is whatever arrived along with the head.
type Reader struct {
	cfg    *config.Config
	client tcp.Client
	buff   []byte
}

func NewReader(cfg *config.Config, client tcp.Client) *Reader {
	return &Reader{
		cfg:    cfg,
		client: client,
		buff:   make([]byte, 0, cfg.NET.ReadBufferSize),
	}
}

// Read returns the next frame. The frame is valid until the next call.
func (r *Reader) Read() (Frame, error) {
	r.buff = r.buff[:0]

	headEnd, err := r.readHead()
	if err != nil {
		return Frame{}, err
	}

	head := r.buff[:headEnd]
	bodyBegin := headEnd + len(delimiter)

	length, found, err := contentLength(head)
	switch {
	case err != nil:
		return Frame{}, err
	case !found:
		return Frame{
			Head: head,
			Body: r.buff[bodyBegin:],
		}, nil
	}

	if length > r.cfg.NET.MaxFrameSize-bodyBegin {
		return Frame{}, status.ErrTruncated
	}

	frameEnd := bodyBegin + length

	for len(r.buff) < frameEnd {
		if err = r.fetch(); err != nil {
			return Frame{}, err
		}
	}

	// head may have been reallocated while fetching the body
	return Frame{
		Head: r.buff[:headEnd],
		Body: r.buff[bodyBegin:frameEnd],
	}, nil
}

func (r *Reader) readHead() (headEnd int, err error) {
	for {
		from := max(0, len(r.buff)-len(delimiter)+1)
		fetchErr := r.fetch()

		if boundary := bytes.Index(r.buff[from:], delimiter); boundary != -1 {
			return from + boundary, nil
		}

		if fetchErr != nil {
			return 0, fetchErr
		}
	}
}

// fetch appends the next piece of data. Pieces that would overflow the frame limit are
// rejected, as well as the stream ending prematurely.
func (r *Reader) fetch() error {
	data, err := r.client.Read()
	if len(r.buff)+len(data) > r.cfg.NET.MaxFrameSize {
		return status.ErrTruncated
	}

	r.buff = append(r.buff, data...)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return status.ErrTruncated
	default:
		return err
	}
}

// contentLength returns the value of the Content-Length header. The value must consist of
// digits only, and repeated headers must agree on it.
func contentLength(head []byte) (length int, found bool, err error) {
	for len(head) > 0 {
		var line []byte
		if lf := bytes.Index(head, []byte("\r\n")); lf != -1 {
			line, head = head[:lf], head[lf+2:]
		} else {
			line, head = head, nil
		}

		key, value, hasColon := bytes.Cut(line, []byte(":"))
		if !hasColon || !strcomp.EqualFold(strutil.TrimWS(uf.B2S(key)), "content-length") {
			continue
		}

		parsed, err := strconv.ParseUint(strutil.TrimWS(uf.B2S(value)), 10, 0)
		if err != nil || parsed > math.MaxInt {
			return 0, true, status.ErrBadContentLength
		}

		if found && int(parsed) != length {
			return 0, true, status.ErrBadContentLength
		}

		length, found = int(parsed), true
	}

	return length, found, nil
}
