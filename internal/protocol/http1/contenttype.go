package http1

import (
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/mime"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

// ResolveContentType classifies a Content-Type header value. The header being absent
// isn't an error, it just results in http.NoContent, as well as any MIME the decoder
// doesn't interpret.
func ResolveContentType(value string, present bool) (http.ContentType, error) {
	if !present {
		return http.ContentType{Class: http.NoContent}, nil
	}

	if mime.Complies(mime.Multipart, value) {
		_, params := strutil.CutHeader(value)
		token := boundaryOf(params)
		if len(token) == 0 {
			return http.ContentType{}, status.ErrMissingBoundary
		}

		return http.ContentType{
			Class:    http.FormData,
			Boundary: http.NewBoundary(token),
		}, nil
	}

	for _, format := range rawFormats {
		if mime.Complies(format.MIME(), value) {
			return http.ContentType{Class: http.RawContent, Format: format}, nil
		}
	}

	return http.ContentType{Class: http.NoContent}, nil
}

var rawFormats = []http.RawFormat{http.Text, http.JSON}

func boundaryOf(params string) string {
	for key, value := range strutil.WalkParams(params) {
		if strcomp.EqualFold(key, "boundary") {
			return value
		}
	}

	return ""
}
