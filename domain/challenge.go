package domain

import "sync"

type Challenge struct {
	ID             string
	ChallengerName string
}

// ChallengeQueue is the FIFO of pending challenges owned by the session.
// Readers such as the conversation only ever see snapshots.
type ChallengeQueue struct {
	mu         sync.RWMutex
	challenges []Challenge
}

func NewChallengeQueue(challenges ...Challenge) *ChallengeQueue {
	return &ChallengeQueue{challenges: append([]Challenge(nil), challenges...)}
}

// Push appends a challenge. A challenge already queued keeps its place, since
// Lichess replays pending challenges when the event stream reconnects.
func (q *ChallengeQueue) Push(c Challenge) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, queued := range q.challenges {
		if queued.ID == c.ID {
			return
		}
	}
	q.challenges = append(q.challenges, c)
}

// Remove drops a challenge that Lichess no longer lists as pending.
func (q *ChallengeQueue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, c := range q.challenges {
		if c.ID == id {
			q.challenges = append(q.challenges[:i], q.challenges[i+1:]...)
			return true
		}
	}
	return false
}

// Challengers returns a copy of the queue, oldest first.
func (q *ChallengeQueue) Challengers() []Challenge {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]Challenge(nil), q.challenges...)
}

func (q *ChallengeQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.challenges)
}
