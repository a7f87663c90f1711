package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"starlinkwifi/pkg/logger"
)

// Client is one connected browser waiting for live site updates.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Manager fans site-update broadcasts out to every connected client. Slow
// clients get dropped rather than backpressuring the broadcast.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("update listener connected: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("update listener disconnected: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for id, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, id)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Broadcast queues a payload for every connected client.
func (m *Manager) Broadcast(message []byte) {
	select {
	case m.broadcast <- message:
	default:
		logger.Warn("broadcast channel full, dropping site update payload")
	}
}

// ClientCount reports how many listeners are connected.
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// ReadPump keeps the connection alive and detects the close.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("websocket read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued payloads to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("websocket write error: %v", err)
			return
		}
	}
}
