// Package domain contains core concepts of the bot chat.
// This file defines ChatLine values and the two conversational rooms.
// No network, engine or storage logic should be added here.
package domain

import (
	"fmt"

	"lichess-chat/errors"
)

type Room string

const (
	RoomPlayer    Room = "player"
	RoomSpectator Room = "spectator"
)

// ParseRoom only accepts the two rooms a game chat has.
func ParseRoom(s string) (Room, error) {
	switch Room(s) {
	case RoomPlayer, RoomSpectator:
		return Room(s), nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownRoom, s)
	}
}

// Other returns the room a message is forwarded to.
func (r Room) Other() Room {
	if r == RoomSpectator {
		return RoomPlayer
	}
	return RoomSpectator
}

// ChatLine represents one inbound chat message.
type ChatLine struct {
	Room     Room
	Username string
	Text     string
}

// NewChatLine builds a ChatLine from a decoded transport payload.
// Missing or non-string keys are read as empty strings.
func NewChatLine(payload map[string]any) ChatLine {
	return ChatLine{
		Room:     Room(stringField(payload, "room")),
		Username: stringField(payload, "username"),
		Text:     stringField(payload, "text"),
	}
}

// WithRoom returns the same line re-addressed to another room.
func (l ChatLine) WithRoom(room Room) ChatLine {
	l.Room = room
	return l
}

func stringField(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	s, _ := payload[key].(string)
	return s
}
