package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptLine is a ChatLine as persisted for a game.
type TranscriptLine struct {
	ID       uuid.UUID
	GameID   string
	Room     Room
	Username string
	Text     string
	At       time.Time
}
