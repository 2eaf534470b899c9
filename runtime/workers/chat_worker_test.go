package workers

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"lichess-chat/domain"
	"lichess-chat/errors"
	"lichess-chat/mocks"
)

func TestChatWorker_ReactsInOrder(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	conversation := mocks.NewMockIConversation(ctrl)
	game := mocks.NewMockIGame(ctrl)
	lines := make(chan domain.ChatLine, 3)
	closed := 0
	worker := NewChatWorker(lines, conversation, game, func() { closed++ }, log)

	first := domain.ChatLine{Room: domain.RoomPlayer, Username: "alice", Text: "!name"}
	second := domain.ChatLine{Room: domain.RoomSpectator, Username: "carol", Text: "!eval"}

	// Then lines reach the conversation in arrival order
	gomock.InOrder(
		conversation.EXPECT().React(gomock.Any(), first, game).Times(1),
		conversation.EXPECT().React(gomock.Any(), second, game).Times(1),
	)

	// When two lines are queued and the channel closed
	lines <- first
	lines <- second
	close(lines)

	req.NoError(worker.Run(context.Background()))
	req.Equal(1, closed)
}

func TestChatWorker_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	worker := NewChatWorker(make(chan domain.ChatLine), mocks.NewMockIConversation(ctrl), mocks.NewMockIGame(ctrl), nil, log)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req.ErrorIs(worker.Run(ctx), context.DeadlineExceeded)
}

func TestGameStreamWorker_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	streamer := mocks.NewMockIGameStreamer(ctrl)
	state := mocks.NewMockIGameStateUpdater(ctrl)
	lines := make(chan domain.ChatLine, 2)
	worker := NewGameStreamWorker(streamer, "abcd1234", state, lines, log)

	stream := `{"type":"gameState","moves":"e2e4","status":"started"}` + "\n" +
		`{"type":"chatLine","room":"player","username":"alice","text":"hi"}` + "\n"

	// Given a stream with one state and one chat line
	streamer.EXPECT().StreamGame(gomock.Any(), "abcd1234").
		Return(io.NopCloser(strings.NewReader(stream)), nil).Times(1)
	// Then the state is forwarded
	state.EXPECT().UpdateState("e2e4", "started").Times(1)

	// When the worker runs to the end of the stream
	req.NoError(worker.Run(context.Background()))

	// Then the line was queued and the channel closed
	line, ok := <-lines
	req.True(ok)
	req.Equal("hi", line.Text)
	_, ok = <-lines
	req.False(ok)
}

func TestGameStreamWorker_StreamError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	streamer := mocks.NewMockIGameStreamer(ctrl)
	worker := NewGameStreamWorker(streamer, "abcd1234", mocks.NewMockIGameStateUpdater(ctrl), make(chan domain.ChatLine), log)

	// Given Lichess refuses the stream
	streamer.EXPECT().StreamGame(gomock.Any(), "abcd1234").Return(nil, io.ErrUnexpectedEOF).Times(1)

	// Then the error is returned so the supervisor restarts the worker
	req.ErrorIs(worker.Run(context.Background()), io.ErrUnexpectedEOF)
}

func TestChallengeStreamWorker_SyncsQueue(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	streamer := mocks.NewMockIEventStreamer(ctrl)
	queue := domain.NewChallengeQueue(domain.Challenge{ID: "old", ChallengerName: "erin"})
	worker := NewChallengeStreamWorker(streamer, queue, log)

	stream := `{"type":"challenge","challenge":{"id":"c1","challenger":{"id":"dave","name":"Dave"}}}` + "\n" +
		"\n" +
		`{"type":"challenge","challenge":{"id":"c2","challenger":{"id":"frank","name":"Frank"}}}` + "\n" +
		`{"type":"challengeDeclined","challenge":{"id":"old"}}` + "\n" +
		`{"type":"challengeCanceled","challenge":{"id":"c2"}}` + "\n"

	// Given an event stream that ends after a few challenge events
	streamer.EXPECT().StreamEvents(gomock.Any()).
		Return(io.NopCloser(strings.NewReader(stream)), nil).Times(1)

	// When the worker reads it to the end
	err := worker.Run(context.Background())

	// Then the end of the stream is reported for a reconnect
	req.ErrorIs(err, errors.ErrStreamEnded)
	// And the queue holds what is still pending
	req.Equal([]domain.Challenge{{ID: "c1", ChallengerName: "Dave"}}, queue.Challengers())
}

func TestChallengeStreamWorker_Errors(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	tests := []struct {
		name   string
		stream func(s *mocks.MockIEventStreamer)
		ctx    func() (context.Context, context.CancelFunc)
		want   error
	}{
		{
			name: "stream refused",
			stream: func(s *mocks.MockIEventStreamer) {
				s.EXPECT().StreamEvents(gomock.Any()).Return(nil, errors.ErrUnexpectedStatus).Times(1)
			},
			ctx:  func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			want: errors.ErrUnexpectedStatus,
		},
		{
			name: "session stopped",
			stream: func(s *mocks.MockIEventStreamer) {
				s.EXPECT().StreamEvents(gomock.Any()).DoAndReturn(func(ctx context.Context) (io.ReadCloser, error) {
					r, w := io.Pipe()
					go func() {
						<-ctx.Done()
						_ = w.Close()
					}()
					return r, nil
				}).Times(1)
			},
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 20*time.Millisecond)
			},
			want: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			streamer := mocks.NewMockIEventStreamer(ctrl)
			tt.stream(streamer)
			ctx, cancel := tt.ctx()
			defer cancel()

			err := NewChallengeStreamWorker(streamer, domain.NewChallengeQueue(), log).Run(ctx)

			req.ErrorIs(err, tt.want)
		})
	}
}
