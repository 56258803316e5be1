package feed

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"starwars/internal/domain"
)

const sendBuffer = 16

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks the open feed connections of every user. A user may hold
// several connections; each gets its own buffered send queue.
type Hub struct {
	connections map[int64]map[*client]struct{}
	mutex       sync.RWMutex
	logger      *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		connections: make(map[int64]map[*client]struct{}),
		logger:      logger,
	}
}

func (h *Hub) register(userID int64, conn *websocket.Conn) *client {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.connections[userID] == nil {
		h.connections[userID] = make(map[*client]struct{})
	}
	h.connections[userID][c] = struct{}{}
	return c
}

func (h *Hub) unregister(userID int64, c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, ok := h.connections[userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.connections, userID)
	}
}

// Publish queues ev on every connection of userID. Connections whose queue
// is full miss the event.
func (h *Hub) Publish(userID int64, ev domain.FavoriteEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("feed: encode event", "user_id", userID, "error", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for c := range h.connections[userID] {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("feed: slow client skipped", "user_id", userID, "type", ev.Type)
		}
	}
}

// Count returns the number of open connections for userID.
func (h *Hub) Count(userID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections[userID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, set := range h.connections {
		for c := range set {
			close(c.send)
			_ = c.conn.Close()
		}
		delete(h.connections, userID)
	}
}
