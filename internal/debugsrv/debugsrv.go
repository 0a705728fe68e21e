// Package debugsrv is the debug status touch point named in
// SPEC_FULL.md's Supplemented Features: a minimal one-way websocket
// push of machine snapshots, grounded on
// inseo-oh-con65/netdriver_ws.go's connection-serving loop but
// stripped of that project's binary command protocol, which is out of
// scope here.
package debugsrv

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/nevisdale/c64core/internal/c64"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server broadcasts c64.Snapshot values, published via Publish, to
// every currently-connected websocket client. It has no inbound
// protocol: anything a client writes is read and discarded.
type Server struct {
	logger *log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func New() *Server {
	return &Server{
		logger:  log.New(log.Writer(), "[debugsrv] ", log.Flags()),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Publish is registered as the Machine's OnTick callback, so it runs
// once per orchestrator iteration. A client whose write fails is
// dropped. Writes carry no deadline, so a client that stops reading
// can stall Publish, and the machine with it.
func (s *Server) Publish(snap c64.Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		s.logger.Printf("marshal snapshot: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.logger.Printf("dropping client %s: %v", conn.RemoteAddr(), err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade error: %v", err)
		return
	}
	s.logger.Printf("new client connection from %s", r.RemoteAddr)

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Snapshots are pushed from Publish; the only thing left to do
	// with this connection is notice when the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
	s.logger.Printf("closed client connection from %s", r.RemoteAddr)
}

// ListenAndServe starts the HTTP(WebSocket) server on addr. It blocks
// until the server errors out, matching net/http's own contract.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.serveWs)
	s.logger.Printf("started debug status server at %s/status", addr)
	return http.ListenAndServe(addr, mux)
}
