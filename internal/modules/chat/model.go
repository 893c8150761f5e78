// README: Chat message and reply models.
package chat

import (
	"time"

	"tripmate/internal/types"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a user's append-only chat log.
type Message struct {
	UserID    types.ID       `json:"user_id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Reply is the composed answer for one inbound chat message.
type Reply struct {
	Reply     string   `json:"reply"`
	Followups []string `json:"followups"`
	Tips      []string `json:"tips"`
	Locale    string   `json:"locale"`
}

// Tip is a daily tip card; tips are generated, not stored.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
