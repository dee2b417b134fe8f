package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/omnicalc/backend/internal/logging"
	"github.com/omnicalc/backend/internal/monitoring"
	"github.com/omnicalc/backend/internal/navigation"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// SelectionEvent is broadcast to subscribers when the persisted mode
// selection changes.
type SelectionEvent struct {
	Type            string `json:"type"`
	Mode            string `json:"mode"`
	SerializationID int    `json:"serialization_id"`
}

// Hub manages WebSocket subscribers interested in selection changes.
type Hub struct {
	logger  *logging.Logger
	metrics *monitoring.Metrics

	mu      sync.RWMutex
	clients map[string]*client
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes to the connection
}

// NewHub creates a selection-change hub. metrics may be nil.
func NewHub(logger *logging.Logger, metrics *monitoring.Metrics) *Hub {
	return &Hub{
		logger:  logger.WithComponent("ws"),
		metrics: metrics,
		clients: make(map[string]*client),
	}
}

// HandleConnection upgrades the request and keeps the subscriber
// registered until the connection closes. Incoming frames are only read
// to detect closure; "ping" messages get a "pong" back.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	cl := &client{conn: conn}

	h.mu.Lock()
	h.clients[id] = cl
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.WSConnections.Inc()
	}
	h.logger.Debug("subscriber connected", zap.String("client_id", id))

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		if h.metrics != nil {
			h.metrics.WSConnections.Dec()
		}
		conn.Close()
		h.logger.Debug("subscriber disconnected", zap.String("client_id", id))
	}()

	cl.send(map[string]string{"type": "system", "message": "subscribed to selection changes"})

	for {
		var msg struct {
			Type string `json:"type"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type == "ping" {
			cl.send(map[string]string{"type": "pong"})
		}
	}
}

// BroadcastSelection notifies every subscriber of a selection change.
func (h *Hub) BroadcastSelection(mode navigation.ViewMode, serializationID int) {
	event := SelectionEvent{
		Type:            "selection_changed",
		Mode:            mode.String(),
		SerializationID: serializationID,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, cl := range h.clients {
		if err := cl.send(event); err != nil {
			h.logger.Debug("broadcast failed", zap.String("client_id", id), zap.Error(err))
		}
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}
