package realtime

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/middlewares"
)

const maxClientMessageSize = 4096

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || middlewares.OriginAllowed(allowedOrigins, origin)
			},
		},
	}
}

// Serve upgrades the request and keeps the observer registered until the peer goes away.
// Client messages are read and discarded; reading is what notices a closed socket.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := h.hub.Register(conn)
	defer h.hub.Deregister(client)

	conn.SetReadLimit(maxClientMessageSize)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).WithField("client_id", client.ID()).Debug("Observer connection closed")
			}
			return
		}
	}
}
