// Package persist reads and writes collection snapshots to a key-value store.
//
// A snapshot is the JSON array of a collection's records in order. Loading is
// fail-soft: anything that is not a usable, non-empty snapshot comes back as
// nil so the caller seeds a blank row.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// KV is the byte store snapshots live in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// ErrEmpty is returned by Decode for a well-formed snapshot with no records.
var ErrEmpty = errors.New("empty snapshot")

// Load returns the records stored under key, or nil when the key is absent,
// unreadable, malformed, or holds an empty array.
func Load[T any](ctx context.Context, kv KV, key string, logger *log.Logger) []T {
	xs, _ := Read[T](ctx, kv, key, logger)
	return xs
}

// Read is Load that also reports a failed store read. The error is non-nil
// only when the store itself could not be read, so callers can tell "nothing
// stored" apart from "could not look". Malformed content is still nil, nil.
func Read[T any](ctx context.Context, kv KV, key string, logger *log.Logger) ([]T, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Warn("snapshot read failed; starting blank", "key", key, "err", err)
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(b) == 0 {
		return nil, nil
	}
	xs, err := Decode[T](b)
	if err != nil {
		if !errors.Is(err, ErrEmpty) {
			logger.Warn("discarding unusable snapshot", "key", key, "err", err)
		}
		return nil, nil
	}
	return xs, nil
}

// Save writes the full collection under key.
func Save[T any](ctx context.Context, kv KV, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return kv.Put(ctx, key, b)
}

// Decode validates b against the snapshot schema and decodes it.
func Decode[T any](b []byte) ([]T, error) {
	if err := Check(b); err != nil {
		return nil, err
	}
	var xs []T
	if err := json.Unmarshal(b, &xs); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	return xs, nil
}
