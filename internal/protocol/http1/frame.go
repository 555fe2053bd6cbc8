package http1

import (
	"bytes"
)

var delimiter = []byte("\r\n\r\n")

// Frame is a raw request, split into the head (request line and headers, without the
// terminating empty line) and the body.
type Frame struct {
	Head, Body []byte
}

// Split separates the head from the body at the first empty line. If there's none, the
// whole data is considered to be the head.
func Split(data []byte) Frame {
	if boundary := bytes.Index(data, delimiter); boundary != -1 {
		return Frame{
			Head: data[:boundary],
			Body: data[boundary+len(delimiter):],
		}
	}

	return Frame{Head: bytes.TrimRight(data, "\r\n")}
}
