// Package transport talks to the Lichess Bot API.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lichess-chat/domain"
	"lichess-chat/errors"
)

const DefaultBaseURL = "https://lichess.org"

type Lichess struct {
	log     *slog.Logger
	baseURL string
	token   string
	client  *http.Client
}

// NewLichess returns a client authenticated with a bot token. timeout bounds
// chat and abort calls only; game streams stay open until the game ends.
func NewLichess(log *slog.Logger, baseURL, token string, timeout time.Duration) *Lichess {
	return &Lichess{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// GameURL is the public page of a game.
func (l *Lichess) GameURL(gameID string) string {
	return l.baseURL + "/" + gameID
}

// Chat posts one message in a game room.
func (l *Lichess) Chat(ctx context.Context, gameID string, room domain.Room, text string) error {
	form := url.Values{}
	form.Set("room", string(room))
	form.Set("text", text)
	path := fmt.Sprintf("/api/bot/game/%s/chat", url.PathEscape(gameID))
	return l.post(ctx, path, form)
}

// Abort aborts a game that has not really started yet.
func (l *Lichess) Abort(ctx context.Context, gameID string) error {
	path := fmt.Sprintf("/api/bot/game/%s/abort", url.PathEscape(gameID))
	return l.post(ctx, path, nil)
}

// StreamGame opens the ndjson event stream of a game. The caller closes it.
func (l *Lichess) StreamGame(ctx context.Context, gameID string) (io.ReadCloser, error) {
	return l.stream(ctx, fmt.Sprintf("/api/bot/game/stream/%s", url.PathEscape(gameID)))
}

// StreamEvents opens the account event stream: incoming challenges and
// game starts. The caller closes it.
func (l *Lichess) StreamEvents(ctx context.Context) (io.ReadCloser, error) {
	return l.stream(ctx, "/api/stream/event")
}

func (l *Lichess) stream(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	l.authorize(req)
	req.Header.Set("Accept", "application/x-ndjson")

	// Streams stay open for hours, the client timeout does not apply.
	streamClient := &http.Client{Transport: l.client.Transport}
	resp, err := streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stream %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("stream %s: %w: %d", path, errors.ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp.Body, nil
}

func (l *Lichess) post(ctx context.Context, path string, form url.Values) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+path, body)
	if err != nil {
		return err
	}
	l.authorize(req)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		l.log.Debug("Lichess refused request", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("post %s: %w: %d", path, errors.ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func (l *Lichess) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+l.token)
}
