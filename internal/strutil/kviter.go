package strutil

import (
	"iter"
	"strings"
)

// WalkParams iterates over semicolon-separated header parameters, e.g. `boundary=x; charset=utf8`.
// Keys and values are stripped of surrounding whitespaces, values are unquoted. A parameter
// without an equality sign or with an empty key is reported as the empty key-value pair
// (key="" and value=""), which is always the last one.
func WalkParams(params string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for len(params) > 0 {
			var param string
			if semicolon := strings.IndexByte(params, ';'); semicolon != -1 {
				param, params = params[:semicolon], params[semicolon+1:]
			} else {
				param, params = params, ""
			}

			param = TrimWS(param)
			if len(param) == 0 {
				continue
			}

			key, value, found := strings.Cut(param, "=")
			key = TrimWS(key)
			if !found || len(key) == 0 {
				yield("", "")
				return
			}

			if !yield(key, Unquote(TrimWS(value))) {
				return
			}
		}
	}
}
