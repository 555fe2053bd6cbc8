package rawhttp

import (
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/method"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("simple get", func(t *testing.T) {
		request, err := Decode([]byte("GET /hello?a=b HTTP/1.1\r\nHost: x\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/hello", request.Path)
		require.Equal(t, "b", request.Params.Value("a"))
		require.Equal(t, "x", request.Host)
		require.Equal(t, http.NoContent, request.ContentType.Class)
	})

	t.Run("error", func(t *testing.T) {
		_, err := Decode([]byte("PUT / HTTP/1.1\r\nHost: x\r\n\r\n"))
		require.ErrorIs(t, err, status.ErrUnsupportedMethod)
	})
}

func TestDecodeFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Headers.Number.Maximal = 1
	frame := Frame{
		Head: []byte("GET / HTTP/1.1\r\nHost: x\r\nAccept: */*"),
	}
	_, err := DecodeFrame(cfg, frame)
	require.ErrorIs(t, err, status.ErrTooManyHeaders)
}

func TestReadRequest(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	go func() {
		_, _ = client.Write([]byte("POST / HTTP/1.1\r\nHost: x\r\nContent-Type: text/plain\r\n"))
		_, _ = client.Write([]byte("Content-Length: 13\r\n\r\nHello, "))
		_, _ = client.Write([]byte("world!"))
	}()

	request, err := ReadRequest(config.Default(), server)
	require.NoError(t, err)
	require.Equal(t, method.POST, request.Method)
	require.Equal(t, http.RawContent, request.ContentType.Class)
	require.Equal(t, "Hello, world!", request.Body.String())
	require.NoError(t, client.Close())
}

func TestApp(t *testing.T) {
	addrCh := make(chan net.Addr, 1)
	requests := make(chan *http.Request, 1)
	errs := make(chan error, 1)

	app := New("localhost:0").
		NotifyOnStart(func(addr net.Addr) {
			addrCh <- addr
		}).
		OnRequest(func(request *http.Request) {
			requests <- request
		}).
		OnError(func(remote net.Addr, err error) {
			if remote == nil {
				err = fmt.Errorf("no remote address: %v", err)
			}
			errs <- err
		})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Serve()
	}()

	var addr string
	select {
	case a := <-addrCh:
		addr = a.String()
	case err := <-serveErr:
		require.FailNow(t, "server failed to start", err)
	}

	send := func(t *testing.T, request string) string {
		conn, err := net.Dial("tcp", addr)
		require.NoError(t, err)
		defer conn.Close()
		require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))
		_, err = conn.Write([]byte(request))
		require.NoError(t, err)
		response, err := io.ReadAll(conn)
		require.NoError(t, err)

		return string(response)
	}

	t.Run("decoded request", func(t *testing.T) {
		response := send(t, "POST /submit HTTP/1.1\r\nHost: localhost\r\n"+
			"Content-Type: application/json\r\nContent-Length: 13\r\n\r\n{\"hello\": 42}")
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", response)

		request := <-requests
		require.Equal(t, "/submit", request.Path)
		var model struct {
			Hello int `json:"hello"`
		}
		require.NoError(t, request.Body.JSON(&model))
		require.Equal(t, 42, model.Hello)
	})

	t.Run("malformed request", func(t *testing.T) {
		response := send(t, "GET / HTTP/1.1\r\nHost localhost\r\n\r\n")
		require.Empty(t, response)
		require.ErrorIs(t, <-errs, status.ErrMalformedHeaderLine)
	})

	require.NoError(t, app.Stop())
	err := <-serveErr
	require.ErrorIs(t, err, status.ErrShutdown)
	require.True(t, IsShutdown(err))
}
