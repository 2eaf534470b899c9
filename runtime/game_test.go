package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"lichess-chat/mocks"
)

func TestGame_IsAbortable(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	game := NewGame(log, "abcd1234", "https://lichess.org/abcd1234", nil)

	// Given a fresh game
	req.True(game.IsAbortable())
	req.Equal("abcd1234", game.ID())

	// When one move is played
	game.UpdateState("e2e4", "started")
	req.True(game.IsAbortable())

	// When both sides moved
	game.UpdateState("e2e4 e7e5", "")
	req.False(game.IsAbortable())

	// When the game is over
	game.UpdateState("", "aborted")
	req.False(game.IsAbortable())
}

func TestGame_AbortIn(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	aborter := mocks.NewMockIAbortTransport(ctrl)
	game := NewGame(log, "abcd1234", "https://lichess.org/abcd1234", aborter)

	done := make(chan struct{})
	// Then the game is aborted exactly once
	aborter.EXPECT().Abort(gomock.Any(), "abcd1234").DoAndReturn(func(_ context.Context, _ string) error {
		close(done)
		return nil
	}).Times(1)

	// When an abort is requested twice, the second replaces the first
	game.AbortIn(60)
	game.AbortIn(0)

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Abort was not triggered in time")
	}
	game.Stop()
}

func TestGame_AbortIn_SkippedOnceMovesArePlayed(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	aborter := mocks.NewMockIAbortTransport(ctrl)
	game := NewGame(log, "abcd1234", "https://lichess.org/abcd1234", aborter)

	// Given the opponent moved after the request
	game.UpdateState("e2e4 e7e5", "started")

	// When the delay elapses
	game.AbortIn(0)
	time.Sleep(50 * time.Millisecond)

	// Then no abort call is made (the mock fails on any call)
}

func TestGame_Stop_CancelsPendingAbort(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	aborter := mocks.NewMockIAbortTransport(ctrl)
	game := NewGame(log, "abcd1234", "https://lichess.org/abcd1234", aborter)

	game.AbortIn(1)
	game.Stop()
	time.Sleep(1200 * time.Millisecond)
}

func TestGame_StaleTimerKeepsPendingAbort(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	aborter := mocks.NewMockIAbortTransport(ctrl)
	game := NewGame(log, "abcd1234", "https://lichess.org/abcd1234", aborter)

	// Given an abort that was replaced by a later request
	game.AbortIn(60)
	stale := game.abortGen
	game.AbortIn(60)

	// When the replaced timer fires anyway
	game.abortNow(stale)

	// Then nothing is aborted and the pending abort is still tracked
	game.mu.Lock()
	pending := game.abortTimer
	game.mu.Unlock()
	req.NotNil(pending)

	// When the session stops
	game.Stop()

	// Then the pending abort is gone
	game.mu.Lock()
	pending = game.abortTimer
	game.mu.Unlock()
	req.Nil(pending)
}
