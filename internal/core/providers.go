package core

import (
	"context"
	"time"
)

// CompletionProvider produces the next assistant utterance for an ordered
// conversation history. Providers are stateless: the full history is resent
// on every call.
type CompletionProvider interface {
	Complete(ctx context.Context, history []Message) (Message, error)
}

// AvailabilityProvider answers a free/busy query over a time window with a
// bounded list of human-readable lines.
type AvailabilityProvider interface {
	FindOpenSlots(ctx context.Context, from, to time.Time) ([]string, error)
}
