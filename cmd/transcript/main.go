package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"lichess-chat/domain"
	"lichess-chat/repositories"
)

var errUsage = errors.New("both -db and -game are required")

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath := flag.String("db", "", "Path to the transcript badger DB")
	gameID := flag.String("game", "", "Game to print")
	limit := flag.Int("limit", 200, "Maximum number of lines")
	logLevel := flag.String("log-level", "WARN", "Log level")
	flag.Parse()

	if *dbPath == "" || *gameID == "" {
		return errUsage
	}
	log := logs.GetLoggerFromString(*logLevel)

	// Read-only, the bot may still hold the lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	defer db.Close()

	repository := repositories.NewTranscriptRepository(db, log, limit)
	lines, _, err := repository.GetLines(*gameID, nil)
	if err != nil {
		return fmt.Errorf("error while reading transcript: %w", err)
	}
	log.Debug("Transcript loaded", "game", *gameID, "lines", len(lines))
	// Stored newest first, printed as a conversation
	slices.Reverse(lines)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Room", "User", "Text"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, line := range lines {
		table.Append([]string{
			line.At.Local().Format(time.TimeOnly),
			roomLabel(line.Room),
			line.Username,
			line.Text,
		})
	}
	table.Render()
	fmt.Printf("\n%d line(s) for game %s\n", len(lines), *gameID)
	return nil
}

func roomLabel(room domain.Room) string {
	switch room {
	case domain.RoomPlayer:
		return color.New(color.FgGreen).Render(string(room))
	case domain.RoomSpectator:
		return color.New(color.FgCyan).Render(string(room))
	default:
		return string(room)
	}
}
