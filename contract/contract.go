//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"io"
	"reflect"

	"lichess-chat/domain"
	"lichess-chat/domain/event"
)

// IGame is the ongoing game the conversation belongs to.
type IGame interface {
	ID() string
	URL() string
	IsAbortable() bool
	// AbortIn schedules an abort and returns immediately.
	AbortIn(seconds int)
}

type IEngine interface {
	Name() string
	// Stats is empty when no evaluation is available.
	Stats() []string
}

type IChatTransport interface {
	Chat(ctx context.Context, gameID string, room domain.Room, text string) error
}

type IAbortTransport interface {
	Abort(ctx context.Context, gameID string) error
}

type IGameStreamer interface {
	StreamGame(ctx context.Context, gameID string) (io.ReadCloser, error)
}

type IEventStreamer interface {
	StreamEvents(ctx context.Context) (io.ReadCloser, error)
}

// ILichessClient is everything a game session needs from Lichess.
type ILichessClient interface {
	IChatTransport
	IAbortTransport
	IGameStreamer
	IEventStreamer
}

// IGameStateUpdater receives the moves and status read from the game stream.
type IGameStateUpdater interface {
	UpdateState(moves, status string)
}

type IChallengeQueue interface {
	Challengers() []domain.Challenge
}

type IChallengeQueueWriter interface {
	Push(challenge domain.Challenge)
	Remove(id string) bool
}

// IChallengeStore is the queue as owned by the session: read by the chat,
// written by the account event stream.
type IChallengeStore interface {
	IChallengeQueue
	IChallengeQueueWriter
}

type ITranscriptRepository interface {
	StoreLine(line domain.TranscriptLine) error
	GetLines(gameID string, cursor *string) ([]domain.TranscriptLine, *string, error)
}

// IConversation reacts to one chat line at a time.
type IConversation interface {
	React(ctx context.Context, line domain.ChatLine, game IGame)
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker
// for supervision logs.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
