package tcp

import (
	"net"
	"sync"

	"github.com/indigo-web/rawhttp/http/status"
)

type onConnection func(net.Conn)

type Server struct {
	sock     net.Listener
	onConn   onConnection
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
	// dropping is set by Stop, connections accepted afterwards are closed immediately
	dropping bool
}

func NewServer(sock net.Listener, onConn onConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

// Start runs the accept loop, serving every connection in its own goroutine. It returns
// status.ErrShutdown after Stop or GracefulShutdown, once all the handlers are done.
func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			wg.Wait()

			s.mu.Lock()
			shutdown := s.shutdown
			s.mu.Unlock()

			if shutdown {
				return status.ErrShutdown
			}

			return err
		}

		s.mu.Lock()
		if s.dropping {
			s.mu.Unlock()
			_ = conn.Close()
			continue
		}

		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		wg.Add(1)
		go s.connHandler(wg, conn)
	}
}

func (s *Server) stopListener(drop bool) error {
	s.mu.Lock()
	s.shutdown = true
	s.dropping = s.dropping || drop
	s.mu.Unlock()

	return s.sock.Close()
}

// Stop shuts listener and ALL the connections down, including those accepted while
// stopping
func (s *Server) Stop() error {
	err := s.stopListener(true)

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.conns {
		_ = conn.Close()
	}

	return err
}

// GracefulShutdown stops a listener, but leaving all the connections free to end their
// lives peacefully
func (s *Server) GracefulShutdown() error {
	return s.stopListener(false)
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	defer wg.Done()

	s.onConn(conn)

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
