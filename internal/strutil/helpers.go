package strutil

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// TrimWS strips spaces and horizontal tabs from both sides.
func TrimWS(str string) string {
	return RStripWS(LStripWS(str))
}

func CutHeader(header string) (value, params string) {
	sep := strings.IndexByte(header, ';')
	if sep == -1 {
		return header, ""
	}

	return header[:sep], LStripWS(header[sep+1:])
}

// CutPrefixFold is strings.CutPrefix with case-insensitive prefix matching.
func CutPrefixFold(str, prefix string) (after string, found bool) {
	if len(str) < len(prefix) || !strcomp.EqualFold(str[:len(prefix)], prefix) {
		return str, false
	}

	return str[len(prefix):], true
}

func Unquote(str string) string {
	if len(str) > 1 && str[0] == '"' && str[len(str)-1] == '"' {
		return str[1 : len(str)-1]
	}

	return str
}
