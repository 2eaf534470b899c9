package internal

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"lichess-chat/errors"
)

type Config struct {
	LichessURL           string        `env:"LICHESS_URL,default=https://lichess.org" validate:"required,url"`
	LichessToken         string        `env:"LICHESS_TOKEN,required=true" validate:"required"`
	BotUsername          string        `env:"BOT_USERNAME,required=true" validate:"required"`
	GameID               string        `env:"GAME_ID,required=true" validate:"required,alphanum"`
	Version              string        `env:"BOT_VERSION,default=dev" validate:"required"`
	EngineName           string        `env:"ENGINE_NAME,required=true" validate:"required"`
	ChatFile             string        `env:"CHAT_FILE"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	BufferSize           int           `env:"BUFFER_SIZE,default=32" validate:"gte=0"`
	HTTPTimeout          time.Duration `env:"HTTP_TIMEOUT,default=10s" validate:"gt=0"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH"`
	LimitTranscriptLines *int          `env:"LIMIT_TRANSCRIPT_LINES" validate:"omitnil,gt=0"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// Validate checks the values go-env cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// ChatFile is the operator's chat setup: extra commands and censored words.
//
//	commands:
//	  discord: "Join us on discord, I run {engine}"
//	censored_words:
//	  - patzer
type ChatFile struct {
	Commands      map[string]string `yaml:"commands"`
	CensoredWords []string          `yaml:"censored_words"`
}

// LoadChatFile reads the operator's chat file. An empty path means no file.
func LoadChatFile(path string) (ChatFile, error) {
	if path == "" {
		return ChatFile{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ChatFile{}, fmt.Errorf("read chat file: %w", err)
	}
	var file ChatFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return ChatFile{}, fmt.Errorf("parse chat file %s: %w", path, err)
	}
	for name := range file.Commands {
		if strings.TrimSpace(name) == "" {
			return ChatFile{}, fmt.Errorf("chat file %s: %w", path, errors.ErrEmptyCommandName)
		}
	}
	return file, nil
}
