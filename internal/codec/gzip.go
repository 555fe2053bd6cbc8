package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

func NewGZIP() Codec {
	return newBaseCodec("gzip", func(src []byte) (io.ReadCloser, error) {
		return gzip.NewReader(bytes.NewReader(src))
	})
}
