package sink

import (
	"context"
	"sync"

	"lichess-chat/domain/event"
)

// Timeline keeps the replies of a game in memory, in the order they were sent.
type Timeline struct {
	mu      sync.Mutex
	Replies []event.ReplySent
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	if evt, ok := e.(event.ReplySent); ok {
		t.mu.Lock()
		t.Replies = append(t.Replies, evt)
		t.mu.Unlock()
	}
	return nil
}

// Texts returns the reply texts sent so far.
func (t *Timeline) Texts() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	texts := make([]string, len(t.Replies))
	for i, r := range t.Replies {
		texts[i] = r.Text
	}
	return texts
}
