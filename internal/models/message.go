package models

// Role tells who authored a chat message.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Option is a reply the user can pick instead of typing. Value is what gets submitted.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Message is one chat bubble of a conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// Options are only actionable on the latest message.
	Options []Option `json:"options,omitempty"`
	// Hint is secondary text shown under the bubble, e.g., why a question is asked.
	Hint string `json:"hint,omitempty"`
	// Report marks the message carrying the rendered assessment report.
	Report bool `json:"report,omitempty"`
}

func (m Message) FromAssistant() bool {
	return m.Role == RoleAssistant
}
