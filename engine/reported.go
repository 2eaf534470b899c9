// Package engine adapts what the chess engine reports to the chat.
package engine

import "sync"

// Reported holds the engine name and the statistics of its latest search.
// The search loop publishes with SetStats, the chat reads with Stats.
//
// The search loop lives outside this module and the chatbot binary publishes
// nothing, so until an embedding program calls SetStats every !eval is
// answered with "No evaluation reported.".
type Reported struct {
	mu    sync.RWMutex
	name  string
	stats []string
}

func NewReported(name string) *Reported {
	return &Reported{name: name}
}

func (r *Reported) Name() string {
	return r.name
}

func (r *Reported) Stats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.stats...)
}

// SetStats replaces the statistics, nil clears them.
func (r *Reported) SetStats(stats ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = append([]string(nil), stats...)
}
