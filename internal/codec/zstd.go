package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

func NewZSTD() Codec {
	return newBaseCodec("zstd", func(src []byte) (io.ReadCloser, error) {
		r, err := zstd.NewReader(bytes.NewReader(src), zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}

		return r.IOReadCloser(), nil
	})
}
