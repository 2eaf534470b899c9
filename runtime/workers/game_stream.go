package workers

import (
	"context"
	"log/slog"

	"lichess-chat/contract"
	"lichess-chat/domain"
	"lichess-chat/transport"
)

// GameStreamWorker reads the game stream, keeps the game state current and
// queues chat lines for the ChatWorker. When the stream ends the game is
// over, and the lines channel is closed.
type GameStreamWorker struct {
	streamer contract.IGameStreamer
	gameID   string
	state    contract.IGameStateUpdater
	lines    chan domain.ChatLine
	log      *slog.Logger
}

func NewGameStreamWorker(
	streamer contract.IGameStreamer,
	gameID string,
	state contract.IGameStateUpdater,
	lines chan domain.ChatLine,
	log *slog.Logger,
) GameStreamWorker {
	return GameStreamWorker{streamer: streamer, gameID: gameID, state: state, lines: lines, log: log}
}

func (w GameStreamWorker) Run(ctx context.Context) error {
	body, err := w.streamer.StreamGame(ctx, w.gameID)
	if err != nil {
		return err
	}
	defer body.Close()

	err = transport.DecodeGameStream(ctx, body, transport.StreamHandler{
		OnChatLine: func(line domain.ChatLine) {
			select {
			case <-ctx.Done():
			case w.lines <- line:
			}
		},
		OnState: func(state transport.GameState) {
			w.state.UpdateState(state.Moves, state.Status)
		},
	})
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	w.log.Info("Game stream ended", "game", w.gameID)
	close(w.lines)
	return nil
}
