package realtime

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is what goes over the wire to every connected client.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// PresenceHub maps user IDs to live websocket connections. It is process
// local, advisory only, and lost on restart; nothing gates a business
// decision on it.
type PresenceHub struct {
	mu    sync.RWMutex
	users map[int]map[*websocket.Conn]struct{}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func NewPresenceHub() *PresenceHub {
	return &PresenceHub{
		users: make(map[int]map[*websocket.Conn]struct{}),
	}
}

// Serve upgrades the request and keeps the connection registered until the
// peer goes away. userID 0 means an anonymous listener.
func (h *PresenceHub) Serve(w http.ResponseWriter, r *http.Request, userID int) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	h.register(userID, conn)
	log.Printf("[ws][connect] user_id=%d online=%d", userID, h.OnlineCount())

	go func() {
		defer func() {
			h.unregister(userID, conn)
			log.Printf("[ws][disconnect] user_id=%d online=%d", userID, h.OnlineCount())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}

func (h *PresenceHub) register(userID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.users[userID] == nil {
		h.users[userID] = make(map[*websocket.Conn]struct{})
	}
	h.users[userID][conn] = struct{}{}
}

func (h *PresenceHub) unregister(userID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.users[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.users, userID)
		}
	}
	_ = conn.Close()
}

func (h *PresenceHub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users)
}

func (h *PresenceHub) IsOnline(userID int) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.users[userID]
	return ok
}

// Broadcast sends the event to every live connection, best effort. The
// write lock serializes broadcasts: gorilla allows at most one writer per
// connection at a time.
func (h *PresenceHub) Broadcast(eventType string, payload interface{}) {
	ev := Event{Type: eventType, Payload: payload}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.users {
		for conn := range conns {
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			_ = conn.WriteJSON(ev)
		}
	}
}
