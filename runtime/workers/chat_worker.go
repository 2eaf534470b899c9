package workers

import (
	"context"
	"log/slog"

	"lichess-chat/contract"
	"lichess-chat/domain"
)

// ChatWorker hands chat lines to the conversation one at a time, in the
// order they were read from the game stream. onClosed, when set, runs once
// the last line has been handled.
type ChatWorker struct {
	lines        chan domain.ChatLine
	conversation contract.IConversation
	game         contract.IGame
	onClosed     func()
	log          *slog.Logger
}

func NewChatWorker(
	lines chan domain.ChatLine,
	conversation contract.IConversation,
	game contract.IGame,
	onClosed func(),
	log *slog.Logger,
) ChatWorker {
	return ChatWorker{lines: lines, conversation: conversation, game: game, onClosed: onClosed, log: log}
}

func (w ChatWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping chat worker")
			return ctx.Err()
		case line, ok := <-w.lines:
			if !ok {
				if w.onClosed != nil {
					w.onClosed()
				}
				return nil
			}
			w.conversation.React(ctx, line, w.game)
		}
	}
}
