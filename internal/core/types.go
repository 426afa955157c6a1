package core

const (
	LexiName      = "Lexi"
	LexiUserAgent = "LexiBot-Intake/0.1"
	LexiVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn. Content is opaque to the core
// except for booking-trigger scanning.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
