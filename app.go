package rawhttp

import (
	"errors"
	"log"
	"net"
	"strconv"
	"sync"

	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/address"
	"github.com/indigo-web/rawhttp/internal/protocol/http1"
	"github.com/indigo-web/rawhttp/internal/server/tcp"
)

// okResponse is written back for every successfully decoded request.
var okResponse = []byte(
	"HTTP/1.1 " + strconv.Itoa(int(status.OK)) + " " + string(status.Text(status.OK)) + "\r\n\r\n",
)

type (
	RequestHandler func(*http.Request)
	ErrorHandler   func(remote net.Addr, err error)
)

// App accepts connections and decodes exactly one request from each of them. Every
// connection is closed once its request is handled.
type App struct {
	addr      string
	cfg       *config.Config
	onRequest RequestHandler
	onError   ErrorHandler
	onStart   func(net.Addr)

	mu     sync.Mutex
	server *tcp.Server
}

// New returns a new App instance. Address consisting only of a port is bound to all
// interfaces.
func New(addr string) *App {
	return &App{
		addr:      address.Normalize(addr),
		cfg:       config.Default(),
		onRequest: func(*http.Request) {},
		onError: func(remote net.Addr, err error) {
			log.Printf("rawhttp: %s: %s", remote, err)
		},
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// OnRequest sets the handler of successfully decoded requests. It is called from the
// connection's goroutine, so must be safe for concurrent use.
func (a *App) OnRequest(cb RequestHandler) *App {
	a.onRequest = cb
	return a
}

// OnError sets the handler of read and decode errors, receiving the client's address as
// well. Connection is closed right after, without any response.
func (a *App) OnError(cb ErrorHandler) *App {
	a.onError = cb
	return a
}

// NotifyOnStart calls the callback with the actual listening address, right before the
// server starts accepting connections.
func (a *App) NotifyOnStart(cb func(net.Addr)) *App {
	a.onStart = cb
	return a
}

// Serve blocks until the server is stopped, then returns status.ErrShutdown. Any other
// error means the server failed to either start or accept connections.
func (a *App) Serve() error {
	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	decoder := http1.NewDecoder(a.cfg)
	server := tcp.NewServer(sock, a.newTCPCallback(decoder))

	a.mu.Lock()
	a.server = server
	a.mu.Unlock()

	if a.onStart != nil {
		a.onStart(sock.Addr())
	}

	return server.Start()
}

// Stop closes the listener and all the open connections. The call isn't blocking, Serve
// returns once all the handlers are done.
func (a *App) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return nil
	}

	return a.server.Stop()
}

// GracefulStop stops accepting new connections, but lets the current ones finish.
func (a *App) GracefulStop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return nil
	}

	return a.server.GracefulShutdown()
}

func (a *App) newTCPCallback(decoder *http1.Decoder) func(net.Conn) {
	return func(conn net.Conn) {
		client := tcp.NewClient(conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize))
		defer func() {
			_ = client.Close()
		}()

		request, err := a.handle(client, decoder)
		if err != nil {
			a.onError(client.Remote(), err)
			return
		}

		a.onRequest(request)
		if err = client.Write(okResponse); err != nil {
			a.onError(client.Remote(), err)
		}
	}
}

func (a *App) handle(client tcp.Client, decoder *http1.Decoder) (*http.Request, error) {
	frame, err := http1.NewReader(a.cfg, client).Read()
	if err != nil {
		return nil, err
	}

	return decoder.DecodeFrame(frame)
}

// IsShutdown reports whether the error returned by Serve is caused by a regular stop.
func IsShutdown(err error) bool {
	return errors.Is(err, status.ErrShutdown)
}
