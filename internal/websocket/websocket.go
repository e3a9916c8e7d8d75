package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"storefront/internal/metrics"
	"storefront/internal/types"
)

const writeTimeout = 5 * time.Second

// Hub tracks connected live reload clients and tells them when the
// catalog changes
type Hub struct {
	upgrader websocket.Upgrader
	version  func() int64

	mu      sync.RWMutex
	clients map[*types.WSClient]bool
}

// NewHub creates a hub. version reports the catalog version sent to new clients.
func NewHub(version func() int64) *Hub {
	return &Hub{
		version: version,
		clients: make(map[*types.WSClient]bool),
	}
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(client *types.WSClient) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
	metrics.LiveClients.Inc()
}

func (h *Hub) remove(client *types.WSClient) {
	h.mu.Lock()
	_, ok := h.clients[client]
	delete(h.clients, client)
	h.mu.Unlock()
	if ok {
		metrics.LiveClients.Dec()
	}
}

func (h *Hub) snapshot() []*types.WSClient {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := make([]*types.WSClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

// ServeHTTP upgrades the connection and keeps it registered until the
// browser goes away
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}

	client := &types.WSClient{Conn: conn}
	h.add(client)
	defer func() {
		h.remove(client)
		conn.Close()
	}()

	logrus.WithField("remote", r.RemoteAddr).Debug("Live reload client connected")

	if err := send(client, types.WSMessage{Type: "hello", Version: h.version()}); err != nil {
		logrus.WithError(err).Warn("Failed to greet live reload client")
		return
	}

	// Clients never send anything meaningful; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).Debug("Live reload client error")
			}
			break
		}
	}

	logrus.Debug("Live reload client disconnected")
}

func send(c *types.WSClient, msg types.WSMessage) error {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.Conn.WriteJSON(msg)
}

// Broadcast sends a message to every connected client and waits for the writes
func (h *Hub) Broadcast(msg types.WSMessage) {
	clients := h.snapshot()

	logrus.WithFields(logrus.Fields{
		"message_type": msg.Type,
		"client_count": len(clients),
	}).Info("Broadcasting message to live reload clients")

	var wg sync.WaitGroup
	for _, client := range clients {
		wg.Add(1)
		go func(c *types.WSClient) {
			defer wg.Done()
			if err := send(c, msg); err != nil {
				logrus.WithError(err).Warn("Failed to send live reload message, dropping client")
				h.remove(c)
				c.Conn.Close()
			}
		}(client)
	}
	wg.Wait()
}

// Run broadcasts a reload for every version received until ctx is done,
// then disconnects all clients
func (h *Hub) Run(ctx context.Context, updates <-chan int64) {
	for {
		select {
		case <-ctx.Done():
			h.CloseAll()
			return
		case version, ok := <-updates:
			if !ok {
				h.CloseAll()
				return
			}
			h.Broadcast(types.WSMessage{Type: "reload", Version: version})
		}
	}
}

// CloseAll sends a close frame to every client and drops it
func (h *Hub) CloseAll() {
	for _, c := range h.snapshot() {
		c.Mu.Lock()
		_ = c.Conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		c.Mu.Unlock()
		h.remove(c)
		c.Conn.Close()
	}
}
