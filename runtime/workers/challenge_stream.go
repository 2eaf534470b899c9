package workers

import (
	"context"
	"log/slog"

	"lichess-chat/contract"
	"lichess-chat/domain"
	"lichess-chat/errors"
	"lichess-chat/transport"
)

// ChallengeStreamWorker keeps the challenge queue in sync with the Lichess
// account event stream. The stream has no natural end, so it runs until the
// session stops it and a dropped connection is an error for the supervisor
// to retry.
type ChallengeStreamWorker struct {
	streamer contract.IEventStreamer
	queue    contract.IChallengeQueueWriter
	log      *slog.Logger
}

func NewChallengeStreamWorker(streamer contract.IEventStreamer, queue contract.IChallengeQueueWriter, log *slog.Logger) ChallengeStreamWorker {
	return ChallengeStreamWorker{streamer: streamer, queue: queue, log: log}
}

func (w ChallengeStreamWorker) Run(ctx context.Context) error {
	body, err := w.streamer.StreamEvents(ctx)
	if err != nil {
		return err
	}
	defer body.Close()

	err = transport.DecodeEventStream(ctx, body, transport.EventHandler{
		OnChallenge: func(challenge domain.Challenge) {
			w.log.Debug("Challenge queued", "id", challenge.ID, "challenger", challenge.ChallengerName)
			w.queue.Push(challenge)
		},
		OnChallengeGone: func(id string) {
			if w.queue.Remove(id) {
				w.log.Debug("Challenge removed", "id", id)
			}
		},
	})
	if err != nil {
		return err
	}
	return errors.ErrStreamEnded
}
