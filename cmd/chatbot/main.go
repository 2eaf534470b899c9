package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"lichess-chat/conversation"
	"lichess-chat/domain"
	"lichess-chat/engine"
	"lichess-chat/internal"
	"lichess-chat/moderation"
	"lichess-chat/repositories"
	"lichess-chat/runtime"
	"lichess-chat/sink"
	"lichess-chat/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires one game session and keeps every defer on the exit path.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	chatFile, err := internal.LoadChatFile(config.ChatFile)
	if err != nil {
		return err
	}

	// 2. Conversation options
	var opts []conversation.Option
	if len(chatFile.CensoredWords) > 0 {
		replacement, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		moderator, err := moderation.NewModerator(chatFile.CensoredWords, replacement, log)
		if err != nil {
			return fmt.Errorf("moderator init failed: %w", err)
		}
		opts = append(opts, conversation.WithModerator(moderator))
	}

	// 3. Transcript (BadgerDB), only when a path is configured
	if config.BadgerFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		repository := repositories.NewTranscriptRepository(db, log, config.LimitTranscriptLines)
		opts = append(opts, conversation.WithSinks(sink.NewTranscriptSink(repository, log)))
	}

	// 4. Session
	client := transport.NewLichess(log, config.LichessURL, config.LichessToken, config.HTTPTimeout)
	session := runtime.NewSession(log, runtime.SessionConfig{
		GameID:     config.GameID,
		GameURL:    client.GameURL(config.GameID),
		Username:   config.BotUsername,
		Version:    config.Version,
		Commands:   chatFile.Commands,
		BufferSize: config.BufferSize,
	}, client, engine.NewReported(config.EngineName), domain.NewChallengeQueue(), opts...)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session.Run(ctx)
	if ctx.Err() != nil {
		log.Info("Shutting down gracefully...")
	}
	log.Info("Program stopped cleanly", slog.String("game", config.GameID))
	return nil
}
