package models

import "time"

const (
	// ChatAuthorUser marks a message typed by the user.
	ChatAuthorUser = "user"

	// ChatAuthorAssistant marks a reply produced by the chat backend.
	ChatAuthorAssistant = "assistant"
)

// ChatMessage is one message in the process-lifetime conversation log.
// The conversation is not part of the persisted state layout.
type ChatMessage struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
