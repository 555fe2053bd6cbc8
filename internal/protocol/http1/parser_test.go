package http1

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/rawhttp/http/method"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/kv"
	"github.com/stretchr/testify/require"
)

func TestParseRequestLine(t *testing.T) {
	parse := func(line string) (method.Method, string, *kv.Storage, error) {
		params := kv.NewExact(4)
		m, path, err := parseRequestLine(line, params)
		return m, path, params, err
	}

	t.Run("simple", func(t *testing.T) {
		m, path, params, err := parse("GET /hello HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, method.GET, m)
		require.Equal(t, "/hello", path)
		require.True(t, params.Empty())
	})

	t.Run("no protocol", func(t *testing.T) {
		m, path, _, err := parse("POST /")
		require.NoError(t, err)
		require.Equal(t, method.POST, m)
		require.Equal(t, "/", path)
	})

	t.Run("query", func(t *testing.T) {
		_, path, params, err := parse("GET /search?q=go&page=2&empty= HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "/search", path)
		require.Equal(t, "go", params.Value("q"))
		require.Equal(t, "2", params.Value("page"))
		value, found := params.Get("empty")
		require.True(t, found)
		require.Empty(t, value)
	})

	t.Run("query is not decoded", func(t *testing.T) {
		_, path, params, err := parse("GET /a%20b?k%20=v+w&x=a=b HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "/a%20b", path)
		require.Equal(t, "v+w", params.Value("k%20"))
		require.Equal(t, "a=b", params.Value("x"))
	})

	t.Run("query keys are case-sensitive", func(t *testing.T) {
		_, _, params, err := parse("GET /?Key=upper&key=lower&key=last HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "upper", params.Value("Key"))
		require.Equal(t, "last", params.Value("key"))
		require.Equal(t, 2, params.Len())
	})

	t.Run("empty query pieces", func(t *testing.T) {
		_, path, params, err := parse("GET /?&a=b&& HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "/", path)
		require.Equal(t, 1, params.Len())
	})

	t.Run("query parameter without value separator", func(t *testing.T) {
		_, _, _, err := parse("GET /path?a=b&flag HTTP/1.1")
		require.ErrorIs(t, err, status.ErrMalformedQueryParameter)
	})

	t.Run("unsupported method", func(t *testing.T) {
		for _, token := range []string{"PUT", "DELETE", "get", "GETS"} {
			_, _, _, err := parse(token + " / HTTP/1.1")
			require.ErrorIs(t, err, status.ErrUnsupportedMethod, token)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, line := range []string{"", "GET", " / HTTP/1.1", "GET  HTTP/1.1"} {
			_, _, _, err := parse(line)
			require.ErrorIs(t, err, status.ErrMalformedRequestLine, line)
		}
	})
}

func TestParseHeaders(t *testing.T) {
	parse := func(lines ...string) (*kv.Storage, error) {
		headers := kv.New()
		return headers, parseHeaders(lines, headers, 10)
	}

	t.Run("keys are lower-cased and values trimmed", func(t *testing.T) {
		headers, err := parse("Host: example.com", "X-Custom-Header:\t  Mixed Case  ")
		require.NoError(t, err)
		require.Equal(t, []string{"host", "x-custom-header"}, headers.Keys())
		require.Equal(t, "example.com", headers.Value("host"))
		require.Equal(t, "Mixed Case", headers.Value("X-CUSTOM-HEADER"))
	})

	t.Run("value containing colons", func(t *testing.T) {
		headers, err := parse("Host: localhost:8080")
		require.NoError(t, err)
		require.Equal(t, "localhost:8080", headers.Value("host"))
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		headers, err := parse("Accept: a", "ACCEPT: b")
		require.NoError(t, err)
		require.Equal(t, 1, headers.Len())
		require.Equal(t, "b", headers.Value("accept"))
	})

	t.Run("obsolete folding", func(t *testing.T) {
		headers, err := parse("X-Long: first", "  second", "\tthird", "Host: x")
		require.NoError(t, err)
		require.Equal(t, "first second third", headers.Value("x-long"))
		require.Equal(t, "x", headers.Value("host"))
	})

	t.Run("folding without a header", func(t *testing.T) {
		_, err := parse(" orphan")
		require.ErrorIs(t, err, status.ErrMalformedHeaderLine)
	})

	t.Run("no colon", func(t *testing.T) {
		_, err := parse("Host: x", "X-Custom-Value")
		require.ErrorIs(t, err, status.ErrMalformedHeaderLine)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := parse(": value")
		require.ErrorIs(t, err, status.ErrMalformedHeaderLine)
	})

	t.Run("too many headers", func(t *testing.T) {
		lines := make([]string, 11)
		for i := range lines {
			lines[i] = uniuri.NewLen(8) + ": value"
		}

		_, err := parse(lines...)
		require.ErrorIs(t, err, status.ErrTooManyHeaders)
	})

	t.Run("random names", func(t *testing.T) {
		name := uniuri.NewLen(12)
		headers, err := parse(name + ": value")
		require.NoError(t, err)
		require.Equal(t, "value", headers.Value(name))
	})
}
