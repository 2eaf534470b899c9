package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"lichess-chat/domain"
)

const transcriptPrefix = "chat:"

type TranscriptRepository struct {
	db         *badger.DB
	log        *slog.Logger
	limitLines *int
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger, limitLines *int) TranscriptRepository {
	return TranscriptRepository{db: db, log: log, limitLines: limitLines}
}

// StoreLine persists a chat line in BadgerDB.
// The key is formatted as "chat:{game_id}:{timestamp_padded}:{uuid}" so a
// prefix scan returns one game's lines in chronological order, and two lines
// in the same nanosecond never collide.
func (r TranscriptRepository) StoreLine(line domain.TranscriptLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	if line.At.IsZero() {
		line.At = time.Now().UTC()
	}
	key := fmt.Sprintf("%s%s:%019d:%s", transcriptPrefix, line.GameID, line.At.UnixNano(), line.ID)

	record, err := fromTranscriptLine(line)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(record)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetLines reads a game's transcript newest first. The returned cursor is
// passed back to continue after the last line read.
func (r TranscriptRepository) GetLines(gameID string, cursor *string) ([]domain.TranscriptLine, *string, error) {
	var rawLines [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("%s%s:", transcriptPrefix, gameID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Highest possible timestamp, then walk back in time
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitLines != nil && len(rawLines) == *r.limitLines {
				r.log.Debug(fmt.Sprintf("Maximum of %d lines reached", *r.limitLines))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(value []byte) error {
				rawLines = append(rawLines, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	lines := make([]domain.TranscriptLine, 0, len(rawLines))
	for _, b := range rawLines {
		var record structpb.Struct
		if err = proto.Unmarshal(b, &record); err != nil {
			return nil, nil, err
		}
		line, err := toTranscriptLine(&record)
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, line)
	}
	return lines, &lastKey, nil
}

func fromTranscriptLine(line domain.TranscriptLine) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":       line.ID.String(),
		"game":     line.GameID,
		"room":     string(line.Room),
		"username": line.Username,
		"text":     line.Text,
		"at":       line.At.UTC().Format(time.RFC3339Nano),
	})
}

func toTranscriptLine(record *structpb.Struct) (domain.TranscriptLine, error) {
	fields := record.GetFields()
	parsedID, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.TranscriptLine{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return domain.TranscriptLine{}, err
	}
	return domain.TranscriptLine{
		ID:       parsedID,
		GameID:   fields["game"].GetStringValue(),
		Room:     domain.Room(fields["room"].GetStringValue()),
		Username: fields["username"].GetStringValue(),
		Text:     fields["text"].GetStringValue(),
		At:       at.UTC(),
	}, nil
}
