package event

import (
	"time"

	"github.com/google/uuid"
	"lichess-chat/domain"
)

type DomainEvent interface {
	GameID() string
}

// ChatLineReceived is emitted for every inbound line, before routing.
type ChatLineReceived struct {
	ID       uuid.UUID
	Game     string
	Room     domain.Room
	Username string
	Text     string
	At       time.Time
}

func (c ChatLineReceived) GameID() string {
	return c.Game
}

// ReplySent is emitted once per reply handed to the transport.
type ReplySent struct {
	ID       uuid.UUID
	Game     string
	Room     domain.Room
	Username string
	Text     string
	At       time.Time
	Err      error
}

func (r ReplySent) GameID() string {
	return r.Game
}
