// Package archive copies the ledger event log to object storage.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// CursorKey holds the ID of the last archived event.
const CursorKey = "events/cursor"

// DefaultBatchSize is the number of events requested per archive object.
const DefaultBatchSize = 500

// EventLister pages through the persisted event log.
type EventLister interface {
	ListEvents(ctx context.Context, afterID uint64, limit int) ([]model.Event, error)
}

// Archiver uploads events not yet archived as JSON lines, one object per
// batch, and advances the cursor after every upload.
type Archiver struct {
	events  EventLister
	storage model.Storage
	batch   int
	logger  *logger.Logger
}

func NewArchiver(events EventLister, storage model.Storage, batch int, logger *logger.Logger) *Archiver {
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	return &Archiver{
		events:  events,
		storage: storage,
		batch:   batch,
		logger:  logger,
	}
}

// Archive uploads everything after the cursor and reports how many events it
// archived.
func (a *Archiver) Archive(ctx context.Context) (int, error) {
	after, err := a.Cursor(ctx)
	if err != nil {
		return 0, err
	}

	archived := 0
	for {
		events, err := a.events.ListEvents(ctx, after, a.batch)
		if err != nil {
			return archived, fmt.Errorf("failed to list events after %d: %w", after, err)
		}
		if len(events) == 0 {
			break
		}

		first, last := events[0].ID, events[len(events)-1].ID
		if err := a.upload(ctx, ObjectKey(first, last), events); err != nil {
			return archived, err
		}
		if err := a.writeCursor(ctx, last); err != nil {
			return archived, err
		}

		a.logger.Debug("Archive: batch uploaded", "from", first, "to", last, "count", len(events))

		archived += len(events)
		after = last
	}

	if archived > 0 {
		a.logger.Info("Archive: events archived", "count", archived, "cursor", after)
	}

	return archived, nil
}

// Cursor returns the ID of the last archived event, zero when nothing was
// archived yet.
func (a *Archiver) Cursor(ctx context.Context) (uint64, error) {
	exists, err := a.storage.Exists(ctx, CursorKey)
	if err != nil {
		return 0, fmt.Errorf("failed to check archive cursor: %w", err)
	}
	if !exists {
		return 0, nil
	}

	rc, err := a.storage.Download(ctx, CursorKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read archive cursor: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return 0, fmt.Errorf("failed to read archive cursor: %w", err)
	}

	cursor, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse archive cursor %q: %w", raw, err)
	}
	return cursor, nil
}

func (a *Archiver) upload(ctx context.Context, key string, events []model.Event) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, event := range events {
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event %d: %w", event.ID, err)
		}
	}

	if err := a.storage.Upload(ctx, key, &buf, int64(buf.Len())); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (a *Archiver) writeCursor(ctx context.Context, last uint64) error {
	raw := strconv.FormatUint(last, 10)
	if err := a.storage.Upload(ctx, CursorKey, strings.NewReader(raw), int64(len(raw))); err != nil {
		return fmt.Errorf("failed to advance archive cursor to %d: %w", last, err)
	}
	return nil
}

// ObjectKey names the archive object holding events first through last.
func ObjectKey(first, last uint64) string {
	return fmt.Sprintf("events/%020d-%020d.jsonl", first, last)
}
