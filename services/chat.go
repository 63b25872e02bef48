package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"MindHub360/models"
)

// Conversation holds the append-only triage transcript for one client
// and schedules delayed delivery of assistant replies. Resetting the
// conversation cancels every pending delivery, so a canceled reply is
// never appended.
type Conversation struct {
	mu         sync.Mutex
	generation int
	messages   []models.ChatMessage
	timers     []*time.Timer

	Triage *TriageService
	Delay  time.Duration
}

func NewConversation(triage *TriageService, delay time.Duration) *Conversation {
	return &Conversation{Triage: triage, Delay: delay}
}

/*
* Append the user's message, classify it immediately, and schedule the
* assistant reply after the configured delay. The reply is precomputed;
* the delay is cosmetic. Returns the classification so synchronous
* callers don't have to wait.
 */
func (c *Conversation) Send(utterance string) TriageResponse {
	response := c.Triage.ClassifyAndRespond(utterance)

	c.mu.Lock()
	c.messages = append(c.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    models.SenderUser,
		Text:      utterance,
		Timestamp: time.Now(),
	})
	gen := c.generation
	timer := time.AfterFunc(c.Delay, func() {
		c.deliver(gen, response)
	})
	c.timers = append(c.timers, timer)
	c.mu.Unlock()

	return response
}

func (c *Conversation) deliver(gen int, response TriageResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.messages = append(c.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    models.SenderAssistant,
		Text:      response.Text,
		Timestamp: time.Now(),
		Exercises: response.Exercises,
		Doctors:   response.Doctors,
	})
}

// Messages returns a copy of the transcript in order.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ChatMessage(nil), c.messages...)
}

// Reset clears the transcript and cancels pending deliveries.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = nil
	c.messages = nil
}
