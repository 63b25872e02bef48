package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBroadcast_ReachesAllClients(t *testing.T) {
	b := NewBroadcaster()
	a := make(chan string, 1)
	c := make(chan string, 1)
	b.Register(a)
	b.Register(c)

	b.Broadcast("doctors")

	assert.Equal(t, "doctors", <-a)
	assert.Equal(t, "doctors", <-c)
}

func TestUnregister_StopsDelivery(t *testing.T) {
	b := NewBroadcaster()
	client := make(chan string, 1)
	b.Register(client)
	b.Unregister(client)

	// Channel was closed on unregister; a broadcast after that must not
	// panic and the closed channel reads zero.
	b.Broadcast("posts")
	got, ok := <-client
	assert.False(t, ok)
	assert.Empty(t, got)

	// Double unregister is safe.
	b.Unregister(client)
}

func TestBroadcast_DropsUnresponsiveClient(t *testing.T) {
	b := NewBroadcaster()
	full := make(chan string) // unbuffered, nobody reading
	b.Register(full)

	done := make(chan struct{})
	go func() {
		b.Broadcast("replies")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("broadcast never returned")
	}

	_, ok := <-full
	assert.False(t, ok)
}
