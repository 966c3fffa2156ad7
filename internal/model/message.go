package model

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is a single entry in the session transcript. The transcript
// is append-only; messages are never reordered or mutated after append.
type ChatMessage struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// Optional attachments. At most one of these is set per message.
	Image    string    `json:"image,omitempty"`
	Images   []string  `json:"images,omitempty"`
	Products []Product `json:"products,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// ChatContext carries session state forwarded with a chat request so the
// backend can personalise its reply.
type ChatContext struct {
	User     string     `json:"user,omitempty"`
	Cart     []CartItem `json:"cart,omitempty"`
	Language string     `json:"language,omitempty"`
}

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	Message string      `json:"message"`
	Image   string      `json:"image,omitempty"`
	Context ChatContext `json:"context"`
}
