// Package ws pkg/ws/hub.go provides the WebSocket fan-out for live
// dashboard updates.
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message types pushed to connected dashboards.
const (
	MsgConnectionStatus = "connection_status"
	MsgMonitorData      = "monitor_data"
	MsgNewEvent         = "new_event"
)

const broadcastBufferSize = 256

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The dashboard may be served from another origin during
	// development.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Message is the envelope every frame carries.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks connected WebSocket clients and fans broadcasts out to
// them. All client set mutations happen on the Run loop.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

// NewHub creates a hub with no clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes client registration and broadcasts until ctx is
// canceled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()

			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()

			log.Printf("WebSocket client %s connected (%d active)", client.id, count)

			if payload, err := json.Marshal(Message{
				Type: MsgConnectionStatus,
				Data: map[string]string{"status": "connected"},
			}); err == nil {
				client.enqueue(payload)
			}
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()

			log.Printf("WebSocket client %s disconnected (%d active)", client.id, count)
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// A client that cannot keep up is dropped rather
					// than allowed to stall the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a typed message for every connected client. A full
// queue drops the message; live updates are best effort.
func (h *Hub) Broadcast(msgType string, data interface{}) {
	payload, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		log.Printf("Error marshaling %s broadcast: %v", msgType, err)
		return
	}

	select {
	case h.broadcast <- payload:
	case <-h.done:
	default:
		log.Printf("WebSocket broadcast queue full, dropping %s message", msgType)
	}
}

// ServeWS upgrades an HTTP request and registers the client with the
// hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading WebSocket connection: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, clientSendBufferSize),
		id:   uuid.New().String(),
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}
