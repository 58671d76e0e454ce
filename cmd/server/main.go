// server is a minimal websocket demo broadcasting one game's delta
// stream to every connected consumer, as a concrete consumer of the
// engine's event surface and the delta protocol. Route wiring beyond
// this single endpoint is out of scope.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/engine"
	"github.com/herohde/clutchchess/pkg/game"
	"github.com/seekerror/logw"
)

var addr = flag.String("addr", ":8080", "Listen address")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// hub re-broadcasts one game's event stream as JSON frames to every
// connected websocket consumer.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub(events <-chan game.Event) *hub {
	h := &hub{clients: make(map[*websocket.Conn]struct{})}
	go h.pump(events)
	return h
}

func (h *hub) pump(events <-chan game.Event) {
	for ev := range events {
		var payload any
		switch {
		case ev.Started != nil:
			payload = struct {
				Type string `json:"type"`
				Tick int64  `json:"tick"`
			}{"started", ev.Started.Tick}
		case ev.Update != nil:
			payload = wrap("update", ev.Update)
		case ev.MoveRejected != nil:
			payload = wrap("move_rejected", ev.MoveRejected)
		case ev.Ended != nil:
			payload = wrap("ended", ev.Ended)
		default:
			continue
		}
		h.broadcast(payload)
	}
}

func wrap(kind string, v any) any {
	return struct {
		Type string `json:"type"`
		Data any    `json:"data"`
	}{Type: kind, Data: v}
}

func (h *hub) broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			c.Close()
			delete(h.clients, c)
		}
	}
}

func (h *hub) join(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *hub) leave(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, engine.WithMaxConcurrentGames(64))
	id, snap, events := e.CreateGame(board.Standard, board.StandardSpeed, 0)
	logw.Infof(ctx, "Game %v ready for consumers", id)

	h := newHub(events)
	initial, _ := json.Marshal(wrap("snapshot", snap))

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logw.Errorf(ctx, "Upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
			return
		}

		h.join(conn)
		defer h.leave(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	logw.Infof(ctx, "Listening on %v", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logw.Exitf(ctx, "Server failed: %v", err)
	}
}
