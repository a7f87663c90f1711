package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/infrastructure/websocket"

	"github.com/google/uuid"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager *websocket.Manager
}

func NewWebSocketHandler(manager *websocket.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
	}
}

// HandleUpdates upgrades the connection and keeps it registered for live
// site-update broadcasts until the client goes away.
func (h *WebSocketHandler) HandleUpdates(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &websocket.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 16),
	}

	h.manager.Register <- client

	go client.WritePump()
	client.ReadPump(h.manager)

	return nil
}
