// Package conversation routes the chat of one game: spectators can whisper to
// the operator, the operator can speak to spectators, and anyone can run
// "!" commands.
package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"lichess-chat/contract"
	"lichess-chat/domain"
	"lichess-chat/domain/event"
	"lichess-chat/moderation"
)

type Conversation struct {
	log         *slog.Logger
	game        contract.IGame
	engine      contract.IEngine
	transport   contract.IChatTransport
	version     string
	challengers contract.IChallengeQueue
	commands    map[string]string
	username    string
	moderator   *moderation.Moderator
	sinks       []contract.EventSink
	builtins    map[string]builtin

	commandsString string
	usernameString string
}

type Option func(*Conversation)

// WithModerator censors spectator messages before they reach the player room.
func WithModerator(m *moderation.Moderator) Option {
	return func(c *Conversation) { c.moderator = m }
}

// WithSinks receives every inbound line and every reply.
func WithSinks(sinks ...contract.EventSink) Option {
	return func(c *Conversation) { c.sinks = append(c.sinks, sinks...) }
}

// NewConversation prepares the router for one game. The help reply is built
// here once: a change to commands requires a new Conversation.
func NewConversation(
	log *slog.Logger,
	game contract.IGame,
	engine contract.IEngine,
	transport contract.IChatTransport,
	version string,
	challengers contract.IChallengeQueue,
	commands map[string]string,
	username string,
	opts ...Option,
) *Conversation {
	c := &Conversation{
		log:         log,
		game:        game,
		engine:      engine,
		transport:   transport,
		version:     version,
		challengers: challengers,
		commands:    make(map[string]string, len(commands)),
		username:    username,
	}
	for name, template := range commands {
		c.commands[strings.ToLower(name)] = template
	}
	c.commandsString = commandsString(commands)
	c.usernameString = domain.UsernamePrefix + username + " "
	c.builtins = c.builtinCommands()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// commandsString lists built-in and operator commands once each, sorted.
func commandsString(commands map[string]string) string {
	names := append([]string(nil), domain.BuiltInCommands...)
	names = append(names, lo.Keys(commands)...)
	names = lo.UniqBy(names, strings.ToLower)
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return domain.CommandPrefix + strings.Join(names, ", "+domain.CommandPrefix)
}

// React classifies one line and acts on at most one rule, in priority order:
// a whisper to the player room, a broadcast to the spectator room, a command.
func (c *Conversation) React(ctx context.Context, line domain.ChatLine, game contract.IGame) {
	c.log.Info(fmt.Sprintf("%s [%s] %s: %s", c.game.URL(), line.Room, line.Username, line.Text))
	c.emit(ctx, event.ChatLineReceived{
		ID:       uuid.New(),
		Game:     c.game.ID(),
		Room:     line.Room,
		Username: line.Username,
		Text:     line.Text,
		At:       time.Now().UTC(),
	})

	whisper, toBot := cutPrefixFold(line.Text, c.usernameString)
	broadcast, toSpectators := cutPrefixFold(line.Text, domain.SpectatorPrefix)

	switch {
	case toBot && line.Room == domain.RoomSpectator:
		c.forwardToPrivate(ctx, line, whisper)

	case toSpectators &&
		line.Room == domain.RoomPlayer &&
		strings.EqualFold(line.Username, c.username):
		c.forwardToPublic(ctx, line, broadcast)

	case strings.HasPrefix(line.Text, domain.CommandPrefix):
		fields := strings.Fields(line.Text[len(domain.CommandPrefix):])
		if len(fields) == 0 {
			return
		}
		c.Command(ctx, line, game, strings.ToLower(fields[0]))
	}
}

func (c *Conversation) forwardToPrivate(ctx context.Context, line domain.ChatLine, text string) {
	if c.moderator != nil {
		var words []string
		text, words = c.moderator.Censor(text)
		if len(words) > 0 {
			c.log.Debug("Censored forwarded message", "username", line.Username, "words", words)
		}
	}
	line = line.WithRoom(domain.RoomPlayer)
	c.sendReply(ctx, line, fmt.Sprintf("Message from %s: %s", line.Username, text))
}

func (c *Conversation) forwardToPublic(ctx context.Context, line domain.ChatLine, text string) {
	line = line.WithRoom(domain.RoomSpectator)
	c.sendReply(ctx, line, text)
}

// sendReply makes a single attempt. Transport failures are logged, never returned.
func (c *Conversation) sendReply(ctx context.Context, line domain.ChatLine, reply string) {
	err := c.transport.Chat(ctx, c.game.ID(), line.Room, reply)
	if err != nil {
		c.log.Warn("Unable to send chat reply", "game", c.game.ID(), "room", line.Room, "error", err)
	}
	c.emit(ctx, event.ReplySent{
		ID:       uuid.New(),
		Game:     c.game.ID(),
		Room:     line.Room,
		Username: c.username,
		Text:     reply,
		At:       time.Now().UTC(),
		Err:      err,
	})
}

func (c *Conversation) emit(ctx context.Context, e event.DomainEvent) {
	for _, sink := range c.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			c.log.Debug("Sink rejected event", "error", err)
		}
	}
}

// cutPrefixFold is strings.CutPrefix under Unicode case folding. It walks
// runes, so a prefix and its folded form may differ in byte length.
func cutPrefixFold(s, prefix string) (string, bool) {
	rest := s
	for _, want := range prefix {
		if rest == "" {
			return s, false
		}
		got, size := utf8.DecodeRuneInString(rest)
		if got != want && !strings.EqualFold(string(got), string(want)) {
			return s, false
		}
		rest = rest[size:]
	}
	return rest, true
}
