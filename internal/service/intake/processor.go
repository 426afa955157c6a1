package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/lexibot/internal/core"
	"github.com/sandevgo/lexibot/internal/session"
	"github.com/sandevgo/lexibot/pkg/log"
	"github.com/sandevgo/lexibot/pkg/retry"
)

// Processor runs one conversation turn to completion: append the user
// message, complete against the full history, splice availability into a
// booking reply, commit both messages.
type Processor struct {
	sessions     *session.Store
	ai           core.CompletionProvider
	availability core.AvailabilityProvider // nil in degraded mode
	window       time.Duration
	retrier      *retry.Retrier
}

func NewProcessor(
	sessions *session.Store,
	ai core.CompletionProvider,
	availability core.AvailabilityProvider,
	windowHours int,
) *Processor {
	return &Processor{
		sessions:     sessions,
		ai:           ai,
		availability: availability,
		window:       time.Duration(windowHours) * time.Hour,
		retrier:      retry.NewDefaultRetrier(),
	}
}

// HandleTurn processes one user utterance and returns the final reply text.
//
// The turn commits atomically: nothing is appended to history until the
// completion call has succeeded, so a failed turn leaves the session exactly
// as it was. An availability failure after the trigger fired is non-fatal
// and degrades to an error line inside the slot list.
func (p *Processor) HandleTurn(ctx context.Context, sessionID, userText string) (string, error) {
	logger := log.FromCtx(ctx)

	if strings.TrimSpace(userText) == "" {
		return "", core.ErrEmptyMessage
	}

	sess := p.sessions.GetOrCreate(sessionID)
	logger.Debug().Str("session_id", sessionID).Int("active_sessions", p.sessions.Len()).Msg("turn accepted")
	sess.Lock()
	defer sess.Unlock()

	userMsg := core.Message{Role: core.RoleUser, Content: userText}
	history := append(sess.History(), userMsg)

	var reply core.Message
	err := p.retrier.Do(ctx, func() error {
		var callErr error
		reply, callErr = p.ai.Complete(ctx, history)
		return callErr
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrProviderUnavailable, err)
	}

	replyText := reply.Content
	if DetectBookingIntent(replyText) {
		logger.Info().Str("session_id", sessionID).Msg("booking trigger detected, querying availability")
		replyText = SpliceSlots(replyText, p.lookupSlots(ctx))
	}

	sess.Append(userMsg, core.Message{Role: core.RoleAssistant, Content: replyText})
	return replyText, nil
}

// lookupSlots queries the availability window starting now. Failures never
// abort the turn: the error text becomes the slot list content, so the
// already-generated qualifying reply still reaches the client.
func (p *Processor) lookupSlots(ctx context.Context) []string {
	now := time.Now().UTC()

	if p.availability == nil {
		return []string{"Error checking calendar: calendar capability is not configured"}
	}

	lines, err := p.availability.FindOpenSlots(ctx, now, now.Add(p.window))
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("availability lookup failed, degrading")
		return []string{fmt.Sprintf("Error checking calendar: %v", err)}
	}
	return lines
}
