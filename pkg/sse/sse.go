package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Event is a server-sent event scoped to a single user.
type Event struct {
	UserID  string
	Name    string
	Payload interface{}
}

type client struct {
	userID string
	ch     chan Event
}

// Manager fans out collection-change and insight events to connected
// clients. Each user may hold several connections (multiple tabs).
type Manager struct {
	register   chan *client
	unregister chan *client
	events     chan Event

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewManager() *Manager {
	return &Manager{
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan Event, 64),
		clients:    make(map[*client]struct{}),
	}
}

// Run processes registrations and event fan-out. Call in a goroutine.
func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			m.mu.Lock()
			m.clients[c] = struct{}{}
			m.mu.Unlock()
		case c := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[c]; ok {
				delete(m.clients, c)
				close(c.ch)
			}
			m.mu.Unlock()
		case ev := <-m.events:
			m.mu.RLock()
			for c := range m.clients {
				if c.userID != ev.UserID {
					continue
				}
				select {
				case c.ch <- ev:
				default:
					// Slow consumer, drop the event rather than block the loop.
				}
			}
			m.mu.RUnlock()
		}
	}
}

// Publish queues an event for every connection of the given user.
func (m *Manager) Publish(userID, name string, payload interface{}) {
	select {
	case m.events <- Event{UserID: userID, Name: name, Payload: payload}:
	default:
		log.Printf("[SSE] Event queue full, dropping %s for user %s", name, userID)
	}
}

// ServeHTTP streams events to a single connection until the client
// disconnects.
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	cl := &client{userID: userID, ch: make(chan Event, 16)}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case ev, ok := <-cl.ch:
			if !ok {
				return
			}
			data, err := json.Marshal(ev.Payload)
			if err != nil {
				log.Printf("[SSE] Failed to marshal payload for %s: %v", ev.Name, err)
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Name, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
