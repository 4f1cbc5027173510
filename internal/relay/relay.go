// Package relay is the neutral meeting point for two peers. It owns no game
// state: every frame is forwarded verbatim to the other side, and that is the
// entire job. Side identity comes from connection order.
package relay

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server pairs incoming connections into matches. The first unpaired
// connection becomes side 0 and waits; the next becomes side 1 and the match
// starts. Frames from side 0 are not read until side 1 is present, so early
// input sits in the socket until the match is live.
type Server struct {
	log *zap.Logger

	mu      sync.Mutex
	waiting *peer
}

type peer struct {
	id   string
	conn *websocket.Conn
}

func NewServer(log *zap.Logger) *Server {
	return &Server{log: log}
}

// Handler is the websocket endpoint to mount.
func (s *Server) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	p := &peer{id: uuid.NewString(), conn: conn}

	s.mu.Lock()
	if s.waiting == nil {
		s.waiting = p
		s.mu.Unlock()
		s.log.Info("peer waiting for opponent", zap.String("peer", p.id))
		return
	}
	first := s.waiting
	s.waiting = nil
	s.mu.Unlock()

	s.log.Info("match started",
		zap.String("side0", first.id),
		zap.String("side1", p.id))
	m := &match{log: s.log, peers: [2]*peer{first, p}}
	m.run()
}

// match forwards frames between exactly two peers until either drops.
type match struct {
	log   *zap.Logger
	peers [2]*peer
	once  sync.Once
}

func (m *match) run() {
	done := make(chan struct{})
	go m.pump(0, done)
	m.pump(1, done)
}

// pump copies frames from one peer to the other. The first read or write
// error tears the whole match down; a half-open match cannot stay in
// lockstep so there is nothing to salvage.
func (m *match) pump(side int, done chan struct{}) {
	src := m.peers[side]
	dst := m.peers[1-side]
	defer m.teardown(done)
	for {
		select {
		case <-done:
			return
		default:
		}
		mt, msg, err := src.conn.ReadMessage()
		if err != nil {
			m.log.Info("peer disconnected", zap.String("peer", src.id), zap.Error(err))
			return
		}
		if err := dst.conn.WriteMessage(mt, msg); err != nil {
			m.log.Info("forward failed", zap.String("peer", dst.id), zap.Error(err))
			return
		}
	}
}

func (m *match) teardown(done chan struct{}) {
	m.once.Do(func() {
		close(done)
		for _, p := range m.peers {
			p.conn.Close()
		}
		m.log.Info("match closed",
			zap.String("side0", m.peers[0].id),
			zap.String("side1", m.peers[1].id))
	})
}
