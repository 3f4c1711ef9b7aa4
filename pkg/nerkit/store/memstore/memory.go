// Package memstore provides an in-memory store.Store for tests and for
// gazetteers small enough to reload on every run.
package memstore

import (
	"context"
	"sort"
	"sync"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu           sync.RWMutex
	dictionaries map[string]map[string]struct{}
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{dictionaries: make(map[string]map[string]struct{})}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutEntries adds phrases to a dictionary, creating it if absent.
func (s *Store) PutEntries(ctx context.Context, label string, phrases []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if label == "" {
		return nil
	}
	dict, ok := s.dictionaries[label]
	if !ok {
		dict = make(map[string]struct{}, len(phrases))
		s.dictionaries[label] = dict
	}
	for _, p := range phrases {
		if p == "" {
			continue
		}
		dict[p] = struct{}{}
	}
	return nil
}

// Entries returns all phrases of a dictionary, sorted.
func (s *Store) Entries(ctx context.Context, label string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dict := s.dictionaries[label]
	out := make([]string, 0, len(dict))
	for p := range dict {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// Labels returns all dictionary labels, sorted.
func (s *Store) Labels(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.dictionaries))
	for label := range s.dictionaries {
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}
