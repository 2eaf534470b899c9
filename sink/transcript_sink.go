package sink

import (
	"context"
	"fmt"
	"log/slog"

	"lichess-chat/contract"
	"lichess-chat/domain"
	"lichess-chat/domain/event"
)

// TranscriptSink persists what was said in a game, inbound and outbound.
// Replies the transport refused are not recorded.
type TranscriptSink struct {
	repository contract.ITranscriptRepository
	log        *slog.Logger
}

func NewTranscriptSink(repository contract.ITranscriptRepository, log *slog.Logger) TranscriptSink {
	return TranscriptSink{repository: repository, log: log}
}

func (d TranscriptSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.ChatLineReceived:
		return d.repository.StoreLine(domain.TranscriptLine{
			ID:       evt.ID,
			GameID:   evt.Game,
			Room:     evt.Room,
			Username: evt.Username,
			Text:     evt.Text,
			At:       evt.At,
		})
	case event.ReplySent:
		if evt.Err != nil {
			return nil
		}
		return d.repository.StoreLine(domain.TranscriptLine{
			ID:       evt.ID,
			GameID:   evt.Game,
			Room:     evt.Room,
			Username: evt.Username,
			Text:     evt.Text,
			At:       evt.At,
		})
	default:
		d.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}
