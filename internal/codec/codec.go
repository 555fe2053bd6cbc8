package codec

import (
	"errors"
	"io"
	"strings"

	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

// Codec reverts a single content coding. Implementations allocate fresh decompressors on
// every call and therefore are safe for concurrent use.
type Codec interface {
	// Token returns a coding token associated with the codec itself.
	Token() string
	// Decode decompresses src, failing with status.ErrBodyTooLarge if the result
	// exceeds limit bytes.
	Decode(src []byte, limit int) ([]byte, error)
}

type Codecs []Codec

// Default returns all the codecs supported out of the box.
func Default() Codecs {
	return Codecs{NewGZIP(), NewDeflate(), NewZSTD()}
}

// Get looks the codec up by its token, case-insensitively.
func (c Codecs) Get(token string) (Codec, bool) {
	for _, codec := range c {
		if strcomp.EqualFold(codec.Token(), token) {
			return codec, true
		}
	}

	return nil, false
}

// Revert undoes the codings listed in a Content-Encoding value. Codings are applied in the
// order they are listed, so they're reverted backwards. The identity coding is ignored.
func (c Codecs) Revert(encoding string, data []byte, limit int) ([]byte, error) {
	tokens := strings.Split(encoding, ",")

	for i := len(tokens) - 1; i >= 0; i-- {
		token := strutil.TrimWS(tokens[i])
		if len(token) == 0 || strcomp.EqualFold(token, "identity") {
			continue
		}

		codec, found := c.Get(token)
		if !found {
			return nil, status.ErrUnsupportedEncoding
		}

		var err error
		if data, err = codec.Decode(data, limit); err != nil {
			return nil, err
		}
	}

	return data, nil
}

type decoderFunc = func(src []byte) (io.ReadCloser, error)

type baseCodec struct {
	token     string
	newReader decoderFunc
}

func newBaseCodec(token string, newReader decoderFunc) baseCodec {
	return baseCodec{
		token:     token,
		newReader: newReader,
	}
}

func (b baseCodec) Token() string {
	return b.token
}

func (b baseCodec) Decode(src []byte, limit int) ([]byte, error) {
	reader, err := b.newReader(src)
	if err != nil {
		return nil, status.ErrBadEncoding
	}

	defer reader.Close()

	// read a single byte more than allowed, so overflows are distinguishable from exact fits
	data, err := io.ReadAll(io.LimitReader(reader, int64(limit)+1))
	switch {
	case err != nil && !errors.Is(err, io.EOF):
		return nil, status.ErrBadEncoding
	case len(data) > limit:
		return nil, status.ErrBodyTooLarge
	}

	return data, nil
}
