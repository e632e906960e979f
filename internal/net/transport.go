package net

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// SketchPath is the websocket endpoint peers connect to.
	SketchPath = "/ws"

	MessageSketch = "sketch"

	writeWait = 10 * time.Second
)

// Message is what the host sends to joined peers.
type Message struct {
	Type    string    `json:"type"`
	PNG     []byte    `json:"png,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Peer is one connected device. Sketches for it wait in a one-slot outbox
// that its own goroutine drains, so a stalled device never blocks Publish.
type Peer struct {
	conn   *websocket.Conn
	outbox chan Message
	mu     sync.Mutex
}

func newPeer(conn *websocket.Conn) *Peer {
	return &Peer{conn: conn, outbox: make(chan Message, 1)}
}

// offer queues msg, replacing a sketch the peer has not been sent yet.
func (p *Peer) offer(msg Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.outbox:
	default:
	}
	p.outbox <- msg
}

// writeLoop sends queued sketches until done is closed or a write fails.
func (p *Peer) writeLoop(done <-chan struct{}, log zerolog.Logger) {
	for {
		select {
		case <-done:
			return
		case msg := <-p.outbox:
			err := p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err == nil {
				err = p.conn.WriteJSON(msg)
			}
			if err != nil {
				log.Warn().Err(err).Str("peer", p.conn.RemoteAddr().String()).Msg("send sketch failed")
				// Closing ends the read loop, which removes the peer.
				p.conn.Close()
				return
			}
		}
	}
}

// Hub is run by the HOST to hand saved sketches to every joined device.
// Devices that join late get the latest sketch straight away.
type Hub struct {
	peers    map[*Peer]struct{}
	latest   *Message
	upgrader websocket.Upgrader
	log      zerolog.Logger
	mu       sync.RWMutex
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		peers: make(map[*Peer]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			// Peers are other devices on the LAN, not browsers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log.With().Str("component", "hub").Logger(),
	}
}

// add registers p and queues the latest sketch for it. Both happen under
// the hub lock, so a concurrent Publish is queued after it, never before.
func (h *Hub) add(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = struct{}{}
	if h.latest != nil {
		p.offer(*h.latest)
	}
	h.log.Info().Str("peer", p.conn.RemoteAddr().String()).Msg("peer joined")
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.peers, p)
	h.log.Info().Str("peer", p.conn.RemoteAddr().String()).Msg("peer left")
}

// PeerCount returns the number of connected peers.
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Publish records png as the latest sketch and queues it for every peer.
// It does not wait for any peer to receive it.
func (h *Hub) Publish(png []byte) {
	msg := Message{Type: MessageSketch, PNG: png, SavedAt: time.Now().UTC()}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = &msg
	for p := range h.peers {
		p.offer(msg)
	}
	h.log.Info().Int("peers", len(h.peers)).Int("bytes", len(png)).Msg("sketch published")
}

// ServeHTTP upgrades the request and keeps the peer until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	peer := newPeer(conn)
	done := make(chan struct{})
	defer close(done)
	go peer.writeLoop(done, h.log)

	h.add(peer)
	defer h.remove(peer)

	// Peers only listen; reading drives pings and notices the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Handler routes SketchPath to the hub.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(SketchPath, h)
	return mux
}

// ListenAndServe serves the hub on port until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}
	srv := &http.Server{Handler: h.Handler(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	h.log.Info().Int("port", port).Msg("hand-off hub listening")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve hub: %w", err)
	}
	return nil
}
