package transport

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lichess-chat/domain"
)

const accountStream = `{"type":"challenge","challenge":{"id":"c1","challenger":{"id":"alice","name":"Alice"}}}

{"type":"challenge","challenge":{"id":"c2","challenger":{"id":"bob"}}}
{"type":"challenge","challenge":{"id":"c3","challenger":{"id":"carol","name":"Carol"}}}
{"type":"challengeCanceled","challenge":{"id":"c2"}}
{"type":"challengeDeclined","challenge":{"id":"c3"}}
{"type":"gameStart","game":{"id":"c1"}}
{"type":"gameFinish","game":{"id":"c1"}}
{"type":"challenge"}
`

func TestDecodeEventStream(t *testing.T) {
	req := require.New(t)
	var challenges []domain.Challenge
	var gone []string

	err := DecodeEventStream(context.Background(), strings.NewReader(accountStream), EventHandler{
		OnChallenge:     func(c domain.Challenge) { challenges = append(challenges, c) },
		OnChallengeGone: func(id string) { gone = append(gone, id) },
	})

	req.NoError(err)
	req.Equal([]domain.Challenge{
		{ID: "c1", ChallengerName: "Alice"},
		{ID: "c2", ChallengerName: "bob"},
		{ID: "c3", ChallengerName: "Carol"},
	}, challenges)
	req.Equal([]string{"c2", "c3", "c1"}, gone)
}

func TestDecodeEventStream_InvalidJSON(t *testing.T) {
	req := require.New(t)

	err := DecodeEventStream(context.Background(), strings.NewReader("[1,2]\n"), EventHandler{})

	req.Error(err)
}
