package http1

import (
	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/internal/codec"
	"github.com/indigo-web/rawhttp/internal/formdata"
	"github.com/indigo-web/rawhttp/kv"
	"github.com/indigo-web/utils/uf"
)

// decodeBody interprets the body according to its classification. Content codings are
// reverted first, so forms and payloads are always seen decompressed.
func decodeBody(
	cfg *config.Config, codecs codec.Codecs, headers http.Headers, ct http.ContentType, body string,
) (http.Body, error) {
	if ct.Class == http.NoContent {
		return http.EmptyBody(), nil
	}

	if encoding, found := headers.Get("content-encoding"); found {
		decoded, err := codecs.Revert(encoding, uf.S2B(body), cfg.Body.MaxSize)
		if err != nil {
			return http.Body{}, err
		}

		body = uf.B2S(decoded)
	}

	if ct.Class == http.FormData {
		fields, err := formdata.ParseMultipart(
			kv.NewExact(cfg.Body.Form.EntriesPrealloc), body, ct.Boundary,
		)
		if err != nil {
			return http.Body{}, err
		}

		return http.NewFields(fields), nil
	}

	return http.NewPayload(ct.Format, body), nil
}
