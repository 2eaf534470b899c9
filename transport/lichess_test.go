package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"lichess-chat/domain"
	"lichess-chat/errors"
)

func TestLichess_Chat(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	received := make(chan *http.Request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.NoError(r.ParseForm())
		received <- r
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewLichess(log, server.URL+"/", "secret", time.Second)

	// When a reply is posted
	err := client.Chat(context.Background(), "abcd1234", domain.RoomSpectator, "gg wp")

	// Then the bot endpoint receives the form
	req.NoError(err)
	r := <-received
	req.Equal(http.MethodPost, r.Method)
	req.Equal("/api/bot/game/abcd1234/chat", r.URL.Path)
	req.Equal("Bearer secret", r.Header.Get("Authorization"))
	req.Equal("spectator", r.PostForm.Get("room"))
	req.Equal("gg wp", r.PostForm.Get("text"))
}

func TestLichess_Abort_Refused(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/bot/game/abcd1234/abort", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewLichess(log, server.URL, "secret", time.Second)

	err := client.Abort(context.Background(), "abcd1234")
	req.ErrorIs(err, errors.ErrUnexpectedStatus)
}

func TestLichess_StreamGame(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/bot/game/stream/abcd1234", r.URL.Path)
		_, _ = io.WriteString(w, `{"type":"chatLine","room":"player","username":"alice","text":"hi"}`+"\n")
	}))
	defer server.Close()

	client := NewLichess(log, server.URL, "secret", time.Second)
	req.Equal(server.URL+"/abcd1234", client.GameURL("abcd1234"))

	body, err := client.StreamGame(context.Background(), "abcd1234")
	req.NoError(err)
	defer body.Close()

	var lines []domain.ChatLine
	err = DecodeGameStream(context.Background(), body, StreamHandler{
		OnChatLine: func(line domain.ChatLine) { lines = append(lines, line) },
	})
	req.NoError(err)
	req.Equal([]domain.ChatLine{{Room: domain.RoomPlayer, Username: "alice", Text: "hi"}}, lines)
}

func TestLichess_StreamEvents(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stream/event" || r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"type":"challenge","challenge":{"id":"c1","challenger":{"id":"alice","name":"Alice"}}}`+"\n")
	}))
	defer server.Close()

	// When the account stream is opened with a valid token
	body, err := NewLichess(log, server.URL, "secret", time.Second).StreamEvents(context.Background())
	req.NoError(err)
	defer body.Close()

	// Then the pending challenge is decoded
	var challenges []domain.Challenge
	err = DecodeEventStream(context.Background(), body, EventHandler{
		OnChallenge: func(c domain.Challenge) { challenges = append(challenges, c) },
	})
	req.NoError(err)
	req.Equal([]domain.Challenge{{ID: "c1", ChallengerName: "Alice"}}, challenges)

	// When the token is wrong
	_, err = NewLichess(log, server.URL, "wrong", time.Second).StreamEvents(context.Background())
	req.ErrorIs(err, errors.ErrUnexpectedStatus)
}
