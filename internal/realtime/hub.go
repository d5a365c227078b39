// Package realtime fans state-change events out to live WebSocket observers.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/sirupsen/logrus"
)

// Conn is the write side of an observer connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type HubConfig struct {
	QueueSize    int
	WriteTimeout time.Duration
	// PingInterval of zero disables pings.
	PingInterval time.Duration
}

func DefaultHubConfig() HubConfig {
	return HubConfig{
		QueueSize:    64,
		WriteTimeout: 10 * time.Second,
		PingInterval: 30 * time.Second,
	}
}

// Hub owns the set of registered observers. Broadcast only enqueues; each client
// has its own goroutine doing socket writes, so a slow observer never holds up
// the others or the caller.
type Hub struct {
	cfg     HubConfig
	log     logrus.FieldLogger
	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub(cfg HubConfig) *Hub {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultHubConfig().QueueSize
	}
	return &Hub{
		cfg:     cfg,
		log:     config.Logger.WithField("component", "hub"),
		clients: make(map[*Client]struct{}),
	}
}

// Register adds conn to the observer set. It receives every event broadcast from now on.
func (h *Hub) Register(conn Conn) *Client {
	c := &Client{
		id:   uuid.New(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.cfg.QueueSize),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	go c.writePump()

	h.log.WithFields(logrus.Fields{"client_id": c.id, "observers": count}).Info("Observer registered")
	return c
}

// Deregister removes c. Removing an absent client is a no-op.
func (h *Hub) Deregister(c *Client) {
	h.mu.Lock()
	removed := h.removeLocked(c)
	count := len(h.clients)
	h.mu.Unlock()

	if removed {
		h.log.WithFields(logrus.Fields{"client_id": c.id, "observers": count}).Info("Observer deregistered")
	}
}

// Broadcast queues event for every registered observer. Observers whose queue is
// full are dropped.
func (h *Hub) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.WithError(err).WithField("type", event.Type).Error("Failed to encode event")
		return
	}

	var dropped []*Client

	h.mu.Lock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			dropped = append(dropped, c)
		}
	}
	for _, c := range dropped {
		h.removeLocked(c)
	}
	count := len(h.clients)
	h.mu.Unlock()

	for _, c := range dropped {
		h.log.WithField("client_id", c.id).Warn("Observer queue full, disconnecting")
	}
	h.log.WithFields(logrus.Fields{"type": event.Type, "observers": count}).Debug("Event broadcast")
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close deregisters every observer.
func (h *Hub) Close() {
	h.mu.Lock()
	for c := range h.clients {
		h.removeLocked(c)
	}
	h.mu.Unlock()
}

func (h *Hub) removeLocked(c *Client) bool {
	if _, ok := h.clients[c]; !ok {
		return false
	}
	delete(h.clients, c)
	close(c.done)
	return true
}

func (h *Hub) deliveryFailed(c *Client, err error) {
	h.log.WithError(err).WithField("client_id", c.id).Warn("Delivery to observer failed")
	h.Deregister(c)
}

// Client is the hub's handle for one observer.
type Client struct {
	id   uuid.UUID
	hub  *Hub
	conn Conn
	send chan []byte
	done chan struct{}
}

func (c *Client) ID() uuid.UUID { return c.id }

// Done is closed once the client has been deregistered.
func (c *Client) Done() <-chan struct{} { return c.done }

func (c *Client) writePump() {
	defer c.conn.Close()

	var ping <-chan time.Time
	if c.hub.cfg.PingInterval > 0 {
		ticker := time.NewTicker(c.hub.cfg.PingInterval)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				c.hub.deliveryFailed(c, err)
				return
			}
		case <-ping:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.hub.deliveryFailed(c, err)
				return
			}
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	if c.hub.cfg.WriteTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout)); err != nil {
			return err
		}
	}
	return c.conn.WriteMessage(messageType, data)
}
