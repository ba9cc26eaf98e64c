package core

import "time"

// Conversation roles understood by the model collaborator.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged conversational turn.
//
// Messages are immutable once created; components exchange them by value.
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a user turn stamped with the current time.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text, Timestamp: time.Now()}
}

// NewAssistantMessage creates an assistant turn stamped with the current time.
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text, Timestamp: time.Now()}
}

// NewSystemMessage creates a system turn stamped with the current time.
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Text: text, Timestamp: time.Now()}
}
