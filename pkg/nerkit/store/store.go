// Package store persists gazetteer dictionaries. Backends exist for
// in-memory use (tests, small word lists) and SQLite (large gazetteers
// shared between annotation runs).
package store

import (
	"context"
	"fmt"

	"github.com/nerkit/nerkit/pkg/nerkit/gazetteer"
	"github.com/nerkit/nerkit/pkg/nerkit/internalerr"
)

// Store is the interface for persisting and querying dictionary entries.
type Store interface {
	Close() error

	// PutEntries adds phrases to the dictionary with the given label,
	// creating it if absent. Duplicate phrases are ignored.
	PutEntries(ctx context.Context, label string, phrases []string) error
	// Entries returns all phrases of a dictionary, sorted. A label with
	// no entries yields an empty slice, not an error.
	Entries(ctx context.Context, label string) ([]string, error)
	// Labels returns all dictionary labels, sorted.
	Labels(ctx context.Context) ([]string, error)
}

// LoadGazetteer assembles a gazetteer from the stored dictionaries for the
// given labels, in argument order. A label whose dictionary is empty or
// absent yields an error wrapping internalerr.ErrMissingDictionary; the
// caller may treat it as a warning and fall back to statistical-only
// annotation.
func LoadGazetteer(ctx context.Context, s Store, labels ...string) (*gazetteer.Gazetteer, error) {
	dictionaries := make([]*gazetteer.Dictionary, 0, len(labels))
	for _, label := range labels {
		phrases, err := s.Entries(ctx, label)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %q: %w", label, err)
		}
		if len(phrases) == 0 {
			return nil, fmt.Errorf("%w: %q", internalerr.ErrMissingDictionary, label)
		}
		dictionaries = append(dictionaries, gazetteer.NewDictionary(label, phrases))
	}
	return gazetteer.New(dictionaries...), nil
}
