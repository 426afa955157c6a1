package intake

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/lexibot/internal/core"
	"github.com/sandevgo/lexibot/internal/session"
	"github.com/sandevgo/lexibot/pkg/retry"
)

// noRetry keeps failure tests from sleeping through backoff delays.
func noRetry() *retry.Retrier {
	cfg := retry.NewDefaultConfig()
	cfg.MaxRetries = 0
	return retry.NewRetrier(cfg)
}

type stubCompletion struct {
	mu       sync.Mutex
	calls    [][]core.Message
	complete func(history []core.Message) (core.Message, error)
}

func (s *stubCompletion) Complete(ctx context.Context, history []core.Message) (core.Message, error) {
	s.mu.Lock()
	snapshot := make([]core.Message, len(history))
	copy(snapshot, history)
	s.calls = append(s.calls, snapshot)
	s.mu.Unlock()
	return s.complete(history)
}

func (s *stubCompletion) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type stubAvailability struct {
	mu    sync.Mutex
	calls int
	lines []string
	err   error
}

func (s *stubAvailability) FindOpenSlots(ctx context.Context, from, to time.Time) ([]string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.lines, s.err
}

func (s *stubAvailability) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func echoCompletion(reply string) *stubCompletion {
	return &stubCompletion{
		complete: func([]core.Message) (core.Message, error) {
			return core.Message{Role: core.RoleAssistant, Content: reply}, nil
		},
	}
}

func TestHandleTurn_HappyPathHistoryShape(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("Thank you for reaching out. How can I help?")
	p := NewProcessor(store, ai, nil, 48)

	const turns = 3
	for i := 0; i < turns; i++ {
		reply, err := p.HandleTurn(ctx, "s1", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		assert.NotEmpty(t, reply)
	}

	history := store.GetOrCreate("s1").History()
	require.Len(t, history, 2*turns+1)
	assert.Equal(t, core.RoleSystem, history[0].Role)
	for i := 1; i < len(history); i += 2 {
		assert.Equal(t, core.RoleUser, history[i].Role)
		assert.Equal(t, core.RoleAssistant, history[i+1].Role)
	}
}

func TestHandleTurn_SendsEntireHistory(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("noted")
	p := NewProcessor(store, ai, nil, 48)

	_, err := p.HandleTurn(ctx, "s1", "first")
	require.NoError(t, err)
	_, err = p.HandleTurn(ctx, "s1", "second")
	require.NoError(t, err)

	require.Len(t, ai.calls, 2)
	second := ai.calls[1]
	require.Len(t, second, 4) // system + first + reply + second
	assert.Equal(t, core.RoleSystem, second[0].Role)
	assert.Equal(t, SystemInstruction, second[0].Content)
	assert.Equal(t, "second", second[3].Content)
}

func TestHandleTurn_EmptyMessageRejected(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("should never run")
	p := NewProcessor(store, ai, nil, 48)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := p.HandleTurn(ctx, "fresh", input)
		assert.ErrorIs(t, err, core.ErrEmptyMessage)
	}

	assert.Equal(t, 0, ai.callCount(), "no model call on invalid input")
	_, exists := store.Peek("fresh")
	assert.False(t, exists, "invalid input must not create a session")
}

func TestHandleTurn_ProviderFailureCommitsNothing(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := &stubCompletion{
		complete: func([]core.Message) (core.Message, error) {
			return core.Message{}, errors.New("upstream 500")
		},
	}
	p := NewProcessor(store, ai, nil, 48)
	p.retrier = noRetry()

	_, err := p.HandleTurn(ctx, "s1", "hello")
	require.ErrorIs(t, err, core.ErrProviderUnavailable)

	history := store.GetOrCreate("s1").History()
	assert.Len(t, history, 1, "failed turn must leave only the seeded system message")
}

func TestHandleTurn_TriggerInvokesAvailabilityOnce(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("can offer you the following open slots: [SLOTS HERE].")
	avail := &stubAvailability{lines: []string{"A", "B"}}
	p := NewProcessor(store, ai, avail, 48)

	reply, err := p.HandleTurn(ctx, "s1", "my spouse is Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, 1, avail.callCount())
	assert.Equal(t, "can offer you the following open slots: \n* A\n* B.", reply)
	assert.NotContains(t, reply, "[SLOTS HERE]")

	history := store.GetOrCreate("s1").History()
	assert.Equal(t, reply, history[2].Content, "post-substitution text is what gets persisted")
}

func TestHandleTurn_NoTriggerSkipsAvailability(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("What is the name of the opposing party?")
	avail := &stubAvailability{lines: []string{"A"}}
	p := NewProcessor(store, ai, avail, 48)

	_, err := p.HandleTurn(ctx, "s1", "I need help with a custody dispute")
	require.NoError(t, err)
	assert.Equal(t, 0, avail.callCount())
}

func TestHandleTurn_TriggerWithoutPlaceholderPassesThrough(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	const reply = "I can offer you the following open slots shortly."
	ai := echoCompletion(reply)
	avail := &stubAvailability{lines: []string{"A"}}
	p := NewProcessor(store, ai, avail, 48)

	got, err := p.HandleTurn(ctx, "s1", "book me in")
	require.NoError(t, err)

	assert.Equal(t, 1, avail.callCount(), "trigger still queries availability")
	assert.Equal(t, reply, got, "missing placeholder is a silent no-op")
}

func TestHandleTurn_AvailabilityFailureDegrades(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("offer you the following open slots: [SLOTS HERE]")
	avail := &stubAvailability{err: errors.New("quota exceeded")}
	p := NewProcessor(store, ai, avail, 48)

	reply, err := p.HandleTurn(ctx, "s1", "book me in")
	require.NoError(t, err, "calendar glitch must not block the qualifying reply")

	assert.Contains(t, reply, "offer you the following open slots")
	assert.Contains(t, reply, "Error checking calendar: quota exceeded")

	history := store.GetOrCreate("s1").History()
	assert.Len(t, history, 3, "degraded turn still commits both messages")
}

func TestHandleTurn_NilAvailabilityDegrades(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("offer you the following open slots: [SLOTS HERE]")
	p := NewProcessor(store, ai, nil, 48)

	reply, err := p.HandleTurn(ctx, "s1", "book me in")
	require.NoError(t, err)
	assert.Contains(t, reply, "calendar capability is not configured")
}

func TestHandleTurn_ConcurrentSameSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(SystemInstruction)
	ai := echoCompletion("noted")
	p := NewProcessor(store, ai, nil, 48)

	const turns = 8
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := p.HandleTurn(ctx, "shared", fmt.Sprintf("turn %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history := store.GetOrCreate("shared").History()
	require.Len(t, history, 2*turns+1)
	for i := 1; i < len(history); i += 2 {
		assert.Equal(t, core.RoleUser, history[i].Role)
		assert.Equal(t, core.RoleAssistant, history[i+1].Role)
	}
}
