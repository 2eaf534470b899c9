package runtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lichess-chat/contract"
)

const (
	statusStarted = "started"
	abortTimeout  = 10 * time.Second
)

// Game is the live state of one game as seen from its stream.
type Game struct {
	mu         sync.Mutex
	log        *slog.Logger
	id         string
	url        string
	aborter    contract.IAbortTransport
	plies      int
	status     string
	abortTimer *time.Timer
	// abortGen tells a firing timer whether it is still the pending abort.
	abortGen uint64
}

func NewGame(log *slog.Logger, id, url string, aborter contract.IAbortTransport) *Game {
	return &Game{log: log, id: id, url: url, aborter: aborter, status: statusStarted}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) URL() string {
	return g.url
}

// UpdateState records the moves played so far and the game status.
func (g *Game) UpdateState(moves, status string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.plies = len(strings.Fields(moves))
	if status != "" {
		g.status = status
	}
}

// IsAbortable reports whether Lichess still accepts an abort: fewer than two
// moves have been played.
func (g *Game) IsAbortable() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isAbortable()
}

func (g *Game) isAbortable() bool {
	return g.status == statusStarted && g.plies < 2
}

// AbortIn aborts the game after the delay unless a move makes it
// non-abortable first. A new call replaces the pending abort.
func (g *Game) AbortIn(seconds int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.abortTimer != nil {
		g.abortTimer.Stop()
	}
	g.abortGen++
	gen := g.abortGen
	g.abortTimer = time.AfterFunc(time.Duration(seconds)*time.Second, func() { g.abortNow(gen) })
}

// abortNow does nothing when gen has been replaced or stopped since its
// timer was armed.
func (g *Game) abortNow(gen uint64) {
	g.mu.Lock()
	if gen != g.abortGen {
		g.mu.Unlock()
		return
	}
	abortable := g.isAbortable()
	g.abortTimer = nil
	g.mu.Unlock()
	if !abortable {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), abortTimeout)
	defer cancel()
	if err := g.aborter.Abort(ctx, g.id); err != nil {
		g.log.Warn("Unable to abort game", "game", g.id, "error", err)
		return
	}
	g.log.Info("Game aborted", "game", g.id)
}

// Stop cancels a pending abort.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.abortGen++
	if g.abortTimer != nil {
		g.abortTimer.Stop()
		g.abortTimer = nil
	}
}
