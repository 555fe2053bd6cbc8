package http1

import (
	"strings"

	"github.com/indigo-web/rawhttp/http/method"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/strutil"
	"github.com/indigo-web/rawhttp/kv"
)

// parseRequestLine parses `METHOD SP target SP version`. The protocol version is ignored,
// query parameters are written into params.
func parseRequestLine(line string, params *kv.Storage) (m method.Method, path string, err error) {
	tokens := strings.Split(line, " ")
	if len(tokens) < 2 || len(tokens[0]) == 0 || len(tokens[1]) == 0 {
		return method.Unknown, "", status.ErrMalformedRequestLine
	}

	m = method.Parse(tokens[0])
	if m == method.Unknown {
		return method.Unknown, "", status.ErrUnsupportedMethod
	}

	path, query, hasQuery := strings.Cut(tokens[1], "?")
	if hasQuery {
		if err = parseQuery(query, params); err != nil {
			return method.Unknown, "", err
		}
	}

	return m, path, nil
}

// parseQuery splits the query on ampersands and each pair on the first equality sign.
// Values aren't percent-decoded.
func parseQuery(query string, params *kv.Storage) error {
	for len(query) > 0 {
		var pair string
		if amp := strings.IndexByte(query, '&'); amp != -1 {
			pair, query = query[:amp], query[amp+1:]
		} else {
			pair, query = query, ""
		}

		if len(pair) == 0 {
			continue
		}

		key, value, found := strings.Cut(pair, "=")
		if !found {
			return status.ErrMalformedQueryParameter
		}

		params.Set(key, value)
	}

	return nil
}

// parseHeaders fills the storage from head lines following the request line. Keys are
// lower-cased, values are trimmed. Lines beginning with a whitespace continue the value of
// the previous header (obsolete line folding).
func parseHeaders(lines []string, headers *kv.Storage, maxHeaders int) error {
	var (
		lastKey string
		number  int
	)

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if len(lastKey) == 0 {
				return status.ErrMalformedHeaderLine
			}

			folded := strutil.TrimWS(line)
			if value := headers.Value(lastKey); len(value) > 0 && len(folded) > 0 {
				folded = value + " " + folded
			} else if len(folded) == 0 {
				folded = value
			}

			headers.Set(lastKey, folded)
			continue
		}

		key, value, found := strings.Cut(line, ":")
		key = strutil.TrimWS(key)
		if !found || len(key) == 0 {
			return status.ErrMalformedHeaderLine
		}

		if number++; number > maxHeaders {
			return status.ErrTooManyHeaders
		}

		lastKey = strings.ToLower(key)
		headers.Set(lastKey, strutil.TrimWS(value))
	}

	return nil
}
