package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

func NewDeflate() Codec {
	return newBaseCodec("deflate", func(src []byte) (io.ReadCloser, error) {
		return flate.NewReader(bytes.NewReader(src)), nil
	})
}
