package conversation

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"lichess-chat/contract"
	"lichess-chat/domain"
)

const (
	howtoReply   = "How to run your own bot: lichess.org/api#tag/Chess-Bot"
	waitReply    = "Waiting 60 seconds..."
	refusalReply = "I don't tell that to my opponent, sorry."
	noEvalReply  = "No evaluation reported."
	noQueueReply = "No challenges queued."
)

type builtin func(ctx context.Context, line domain.ChatLine, game contract.IGame) Lookup

// Command answers a "!" command. The help reply is sent first and does not
// stop resolution, so an operator command named "help" replies as well.
func (c *Conversation) Command(ctx context.Context, line domain.ChatLine, game contract.IGame, cmd string) {
	if cmd == "commands" || cmd == "help" {
		c.sendReply(ctx, line, fmt.Sprintf("Supported commands: %s.", c.commandsString))
	}
	if reply, ok := c.lookup(ctx, line, game, cmd).Reply(); ok {
		c.sendReply(ctx, line, reply)
	}
}

// lookup tries operator commands before built-ins.
func (c *Conversation) lookup(ctx context.Context, line domain.ChatLine, game contract.IGame, cmd string) Lookup {
	if l := c.userCommand(cmd); l != NotFound {
		return l
	}
	handler, ok := c.builtins[cmd]
	if !ok {
		return NotFound
	}
	return handler(ctx, line, game)
}

// userCommand renders an operator template. A template that cannot be
// rendered behaves as if the command did not exist.
func (c *Conversation) userCommand(cmd string) Lookup {
	template, ok := c.commands[strings.ToLower(cmd)]
	if !ok {
		return NotFound
	}
	reply, err := FormatTemplate(template, map[string]string{
		"engine":  c.engine.Name(),
		"version": c.version,
	})
	if err != nil {
		c.log.Debug("Ignoring command template", "command", cmd, "error", err)
		return NotFound
	}
	return Found(reply)
}

func (c *Conversation) builtinCommands() map[string]builtin {
	return map[string]builtin{
		"wait":  c.wait,
		"name":  c.name,
		"howto": c.howto,
		"eval":  c.eval,
		"queue": c.queue,
		"chat":  c.chat,
	}
}

func (c *Conversation) wait(_ context.Context, _ domain.ChatLine, game contract.IGame) Lookup {
	if !game.IsAbortable() {
		return NotFound
	}
	game.AbortIn(int(domain.AbortDelay.Seconds()))
	return Found(waitReply)
}

func (c *Conversation) name(context.Context, domain.ChatLine, contract.IGame) Lookup {
	return Found(fmt.Sprintf("%s (lichess-bot v%s).", c.engine.Name(), c.version))
}

func (c *Conversation) howto(context.Context, domain.ChatLine, contract.IGame) Lookup {
	return Found(howtoReply)
}

// eval is only shown to spectators and to the operator.
func (c *Conversation) eval(_ context.Context, line domain.ChatLine, _ contract.IGame) Lookup {
	if line.Room != domain.RoomSpectator && !strings.EqualFold(line.Username, c.username) {
		return Found(refusalReply)
	}
	stats := c.engine.Stats()
	if len(stats) == 0 {
		return Found(noEvalReply)
	}
	return Found(strings.Join(stats, ", ") + ".")
}

// queue lists the most recent challenger first.
func (c *Conversation) queue(context.Context, domain.ChatLine, contract.IGame) Lookup {
	var challengers []domain.Challenge
	if c.challengers != nil {
		challengers = c.challengers.Challengers()
	}
	if len(challengers) == 0 {
		return Found(noQueueReply)
	}
	names := lo.Map(challengers, func(challenge domain.Challenge, _ int) string {
		return domain.UsernamePrefix + challenge.ChallengerName
	})
	slices.Reverse(names)
	return Found("Challenge queue: " + strings.Join(names, ", "))
}

func (c *Conversation) chat(context.Context, domain.ChatLine, contract.IGame) Lookup {
	return Found(fmt.Sprintf(
		"You can chat with me (if I'm watching) by prepending messages with \"%s%s \".",
		domain.UsernamePrefix, c.username,
	))
}
