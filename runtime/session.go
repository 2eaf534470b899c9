package runtime

import (
	"context"
	"log/slog"

	"lichess-chat/contract"
	"lichess-chat/conversation"
	"lichess-chat/domain"
	"lichess-chat/runtime/workers"
)

type SessionConfig struct {
	GameID     string
	GameURL    string
	Username   string
	Version    string
	Commands   map[string]string
	BufferSize int
}

// Session runs the chat of one game until its stream ends or ctx is cancelled.
type Session struct {
	log          *slog.Logger
	game         *Game
	conversation *conversation.Conversation
	supervisor   contract.ISupervisor
	lines        chan domain.ChatLine
	client       contract.ILichessClient
	challengers  contract.IChallengeStore
	gameID       string
}

func NewSession(
	log *slog.Logger,
	config SessionConfig,
	client contract.ILichessClient,
	engine contract.IEngine,
	challengers contract.IChallengeStore,
	opts ...conversation.Option,
) *Session {
	game := NewGame(log, config.GameID, config.GameURL, client)
	conv := conversation.NewConversation(
		log, game, engine, client, config.Version, challengers, config.Commands, config.Username, opts...,
	)
	return &Session{
		log:          log,
		game:         game,
		conversation: conv,
		supervisor:   workers.NewSupervisor(log),
		lines:        make(chan domain.ChatLine, config.BufferSize),
		client:       client,
		challengers:  challengers,
		gameID:       config.GameID,
	}
}

func (s *Session) Game() *Game {
	return s.game
}

// Run blocks until the game stream has ended and its last chat line has been
// answered. The challenge stream is stopped at that point.
func (s *Session) Run(ctx context.Context) {
	defer s.game.Stop()
	s.log.Info("Listening to game chat", "game", s.gameID, "url", s.game.URL())
	s.supervisor.Add(
		workers.NewGameStreamWorker(s.client, s.gameID, s.game, s.lines, s.log),
		workers.NewChatWorker(s.lines, s.conversation, s.game, s.supervisor.Stop, s.log),
		workers.NewChallengeStreamWorker(s.client, s.challengers, s.log),
	).Run(ctx)
}

// Stop ends the session early.
func (s *Session) Stop() {
	s.supervisor.Stop()
}
