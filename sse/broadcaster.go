package sse

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Broadcaster fans collection-change events out to every connected
// client. Clients re-fetch the named collection on receipt; missing an
// event is harmless because polling stays sufficient.
type Broadcaster struct {
	clients map[chan string]bool
	mu      sync.Mutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[chan string]bool)}
}

func (b *Broadcaster) Register(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

func (b *Broadcaster) Unregister(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.clients[client] {
		delete(b.clients, client)
		close(client)
	}
}

// Broadcast sends the changed collection name to all registered clients.
// Unresponsive clients are dropped after one second.
func (b *Broadcaster) Broadcast(collection string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- collection:
		case <-time.After(1 * time.Second):
			delete(b.clients, client)
			close(client)
		}
	}
}

var Default = NewBroadcaster()

// Events streams change notifications over server-sent events.
func Events(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	client := make(chan string, 4)
	Default.Register(client)
	defer Default.Unregister(client)

	for {
		select {
		case collection, ok := <-client:
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "event: refresh\ndata: %s\n\n", collection)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
