package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
	"lichess-chat/errors"
)

func validConfig() Config {
	return Config{
		LichessURL:      "https://lichess.org",
		LichessToken:    "lip_token",
		BotUsername:     "Bot1",
		GameID:          "abcd1234",
		Version:         "1.0.0",
		EngineName:      "Stockfish",
		CharReplacement: "*",
		BufferSize:      32,
		HTTPTimeout:     10 * time.Second,
		LogLevel:        "INFO",
	}
}

func TestConfig_FromEnviron(t *testing.T) {
	req := require.New(t)
	t.Setenv("LICHESS_TOKEN", "lip_token")
	t.Setenv("BOT_USERNAME", "Bot1")
	t.Setenv("GAME_ID", "abcd1234")
	t.Setenv("ENGINE_NAME", "Stockfish")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	// Then defaults are applied and the result is valid
	req.Equal("https://lichess.org", config.LichessURL)
	req.Equal("dev", config.Version)
	req.Equal(10*time.Second, config.HTTPTimeout)
	req.Equal("*", config.CharReplacement)
	req.Nil(config.LimitTranscriptLines)
	req.NoError(config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		description string
		modify      func(c *Config)
		wantErr     bool
	}{
		{"Should succeed with valid data", func(c *Config) {}, false},
		{"Should fail without token", func(c *Config) { c.LichessToken = "" }, true},
		{"Should fail with an invalid url", func(c *Config) { c.LichessURL = "lichess" }, true},
		{"Should fail with a game id that is not alphanumeric", func(c *Config) { c.GameID = "../abort" }, true},
		{"Should fail with an unknown log level", func(c *Config) { c.LogLevel = "VERBOSE" }, true},
		{"Should fail with a multi character replacement", func(c *Config) { c.CharReplacement = "**" }, true},
		{"Should fail with a zero limit", func(c *Config) { zero := 0; c.LimitTranscriptLines = &zero }, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			config := validConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("♟")
	req.NoError(err)
	req.Equal('♟', r)

	_, err = CharacterRune("")
	req.Error(err)
}

func TestLoadChatFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "chat.yml")
	content := "commands:\n  Discord: \"Join us, I run {engine}\"\ncensored_words:\n  - patzer\n"
	req.NoError(os.WriteFile(path, []byte(content), 0o600))

	file, err := LoadChatFile(path)

	req.NoError(err)
	req.Equal(map[string]string{"Discord": "Join us, I run {engine}"}, file.Commands)
	req.Equal([]string{"patzer"}, file.CensoredWords)
}

func TestLoadChatFile_NoPath(t *testing.T) {
	req := require.New(t)

	file, err := LoadChatFile("")

	req.NoError(err)
	req.Empty(file.Commands)
}

func TestLoadChatFile_EmptyCommandName(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "chat.yml")
	req.NoError(os.WriteFile(path, []byte("commands:\n  \"\": \"nope\"\n"), 0o600))

	_, err := LoadChatFile(path)

	req.ErrorIs(err, errors.ErrEmptyCommandName)
}
