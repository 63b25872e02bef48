package models

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage is one entry in the triage conversation transcript.
// Messages are append-only and never mutated once created.
type ChatMessage struct {
	ID        string     `json:"id" bson:"id"`
	Sender    string     `json:"sender" bson:"sender"`
	Text      string     `json:"text" bson:"text"`
	Timestamp time.Time  `json:"timestamp" bson:"timestamp"`
	Exercises []Exercise `json:"exercises,omitempty" bson:"exercises,omitempty"`
	Doctors   []Doctor   `json:"doctors,omitempty" bson:"doctors,omitempty"`
}
