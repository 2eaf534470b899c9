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
	eventGameFull  = "gameFull"
	eventGameState = "gameState"
	eventChatLine  = "chatLine"
)

// GameState is the part of a game state the chat cares about.
type GameState struct {
	Moves  string
	Status string
}

type StreamHandler struct {
	OnChatLine func(line domain.ChatLine)
	OnState    func(state GameState)
}

// DecodeGameStream reads a Lichess game stream until it ends or ctx is done.
// Keep-alive blank lines and unknown event types are skipped.
func DecodeGameStream(ctx context.Context, r io.Reader, h StreamHandler) error {
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
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("decode game event: %w", err)
		}

		switch payload["type"] {
		case eventChatLine:
			if h.OnChatLine != nil {
				h.OnChatLine(domain.NewChatLine(payload))
			}
		case eventGameFull:
			if state, ok := payload["state"].(map[string]any); ok && h.OnState != nil {
				h.OnState(toGameState(state))
			}
		case eventGameState:
			if h.OnState != nil {
				h.OnState(toGameState(payload))
			}
		}
	}
	return scanner.Err()
}

func toGameState(payload map[string]any) GameState {
	moves, _ := payload["moves"].(string)
	status, _ := payload["status"].(string)
	return GameState{Moves: moves, Status: status}
}
