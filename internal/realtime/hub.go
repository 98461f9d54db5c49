package realtime

import (
	"encoding/json"
	"sync"
	"time"
)

// Topics a client can subscribe to.
const (
	// TopicPublic carries content changes every visitor may see.
	TopicPublic = "public"
	// TopicAdmin carries events for signed-in editors, such as new feedback.
	TopicAdmin = "admin"
)

// Client represents a single websocket client connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event is the message pushed to subscribers when content changes.
type Event struct {
	Type     string    `json:"type"`
	Resource string    `json:"resource"`
	ID       string    `json:"id,omitempty"`
	At       time.Time `json:"at"`
	Version  int       `json:"version"`
}

// Hub maintains live connections per topic and broadcasts events to them.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[Client]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[Client]struct{})}
}

// Subscribe adds a client to a topic.
func (h *Hub) Subscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[Client]struct{})
	}
	h.topics[topic][client] = struct{}{}
}

// Unsubscribe removes a client; if the topic has no more clients, cleans up map.
func (h *Hub) Unsubscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.topics[topic]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.topics, topic)
		}
	}
}

// Subscribers returns the number of clients on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Broadcast sends a message to all clients of a topic and returns how many
// accepted it. Clients whose send fails are left for their handler to clean up.
func (h *Hub) Broadcast(topic string, message []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sent := 0
	for c := range h.topics[topic] {
		if c.Send(message) {
			sent++
		}
	}
	return sent
}

// Publish encodes evt and broadcasts it on topic.
func (h *Hub) Publish(topic string, evt Event) error {
	if evt.Version == 0 {
		evt.Version = 1
	}
	if evt.At.IsZero() {
		evt.At = time.Now().UTC()
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	h.Broadcast(topic, b)
	return nil
}
