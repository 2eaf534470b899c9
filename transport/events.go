package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"lichess-chat/domain"
)

const (
	eventChallenge         = "challenge"
	eventChallengeCanceled = "challengeCanceled"
	eventChallengeDeclined = "challengeDeclined"
	eventGameStart         = "gameStart"
)

type accountEvent struct {
	Type      string `json:"type"`
	Challenge *struct {
		ID         string `json:"id"`
		Challenger *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"challenger"`
	} `json:"challenge"`
	Game *struct {
		ID string `json:"id"`
	} `json:"game"`
}

type EventHandler struct {
	OnChallenge func(challenge domain.Challenge)
	// OnChallengeGone receives the id of a challenge that left the queue.
	// A started game shares the id of the challenge it came from.
	OnChallengeGone func(id string)
}

// DecodeEventStream reads the Lichess account event stream until it ends or
// ctx is done. Keep-alive blank lines and other event types are skipped.
func DecodeEventStream(ctx context.Context, r io.Reader, h EventHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var evt accountEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			return fmt.Errorf("decode account event: %w", err)
		}

		switch evt.Type {
		case eventChallenge:
			if evt.Challenge != nil && evt.Challenge.ID != "" && h.OnChallenge != nil {
				h.OnChallenge(toChallenge(evt))
			}
		case eventChallengeCanceled, eventChallengeDeclined:
			if evt.Challenge != nil && evt.Challenge.ID != "" && h.OnChallengeGone != nil {
				h.OnChallengeGone(evt.Challenge.ID)
			}
		case eventGameStart:
			if evt.Game != nil && evt.Game.ID != "" && h.OnChallengeGone != nil {
				h.OnChallengeGone(evt.Game.ID)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return ctx.Err()
}

// toChallenge falls back to the challenger id when Lichess sends no display name.
func toChallenge(evt accountEvent) domain.Challenge {
	challenge := domain.Challenge{ID: evt.Challenge.ID}
	if c := evt.Challenge.Challenger; c != nil {
		challenge.ChallengerName = c.Name
		if challenge.ChallengerName == "" {
			challenge.ChallengerName = c.ID
		}
	}
	return challenge
}
