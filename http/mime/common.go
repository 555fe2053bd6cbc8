package mime

import (
	"github.com/indigo-web/rawhttp/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

type MIME = string

const (
	Plain     MIME = "text/plain"
	JSON      MIME = "application/json"
	Multipart MIME = "multipart/form-data"
)

// Complies reports whether the Content-Type value denotes the MIME. Parameters are
// ignored, the comparison is case-insensitive.
func Complies(mime MIME, with string) bool {
	with, _ = strutil.CutHeader(with)
	return strcomp.EqualFold(strutil.TrimWS(with), mime)
}
