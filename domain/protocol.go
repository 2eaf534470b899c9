package domain

import "time"

const (
	CommandPrefix   = "!"
	UsernamePrefix  = "@"
	SpectatorPrefix = "spectator<"

	// AbortDelay is how long "!wait" holds an abortable game open.
	AbortDelay = 60 * time.Second
)

// BuiltInCommands lists the commands advertised by the help reply.
// "wait" is handled but deliberately not advertised.
var BuiltInCommands = []string{"name", "howto", "eval", "queue", "chat"}
