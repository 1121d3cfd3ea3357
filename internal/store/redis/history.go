// Package redis keeps a capped history of mutation outcomes so the serve
// mode can show what recently changed. The GeoJSON file stays the single
// source of truth for the dataset itself.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/markermap/markermap/internal/event"
)

// HistoryEntry is one recorded pipeline run.
type HistoryEntry struct {
	Request    int       `json:"request"` // ticketing-system request identifier
	OK         bool      `json:"ok"`
	Message    string    `json:"message"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Store handles redis operations for the outcome history.
type Store struct {
	client *redis.Client
	size   int
}

// NewStore creates a history store capped at size entries.
func NewStore(client *redis.Client, size int) *Store {
	if size <= 0 {
		size = 50
	}
	return &Store{client: client, size: size}
}

// Record pushes an outcome onto the history and trims it to the cap.
func (s *Store) Record(ctx context.Context, request int, outcome event.Outcome) error {
	entry := HistoryEntry{
		Request:    request,
		OK:         outcome.OK,
		Message:    outcome.Message,
		RecordedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, OutcomeHistoryKey(), data)
	pipe.LTrim(ctx, OutcomeHistoryKey(), 0, int64(s.size)-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}
	return nil
}

// Recent returns up to n history entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]HistoryEntry, error) {
	if n <= 0 || n > s.size {
		n = s.size
	}
	raw, err := s.client.LRange(ctx, OutcomeHistoryKey(), 0, int64(n)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read outcome history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			// Skip entries that no longer decode
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
