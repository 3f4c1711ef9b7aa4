// Package reconcile merges gazetteer spans with statistical tagger spans
// under a non-overlap invariant and a dictionary-precedence policy, and
// materializes the surviving spans as entity mentions.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/nerkit/nerkit/pkg/nerkit/span"
)

// Concatenate appends b to a copy of a. No deduplication is performed;
// use it to build a raw union of two span sets before overlap pruning.
func Concatenate(a, b []span.Span) []span.Span {
	out := make([]span.Span, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// PruneOverlaps selects a maximal non-overlapping subset of the candidate
// spans, preferring higher Prob, then earlier start, then longer span.
// The result is ordered by start index. Pruning an already pruned set
// returns it unchanged.
func PruneOverlaps(spans []span.Span) []span.Span {
	if len(spans) <= 1 {
		out := make([]span.Span, len(spans))
		copy(out, spans)
		return out
	}

	// Rank candidates by priority, then accept greedily.
	ranked := make([]span.Span, len(spans))
	copy(ranked, spans)
	sortByPriority(ranked)

	var kept []span.Span
	for _, c := range ranked {
		if overlapsAny(c, kept) {
			continue
		}
		kept = append(kept, c)
	}

	span.SortByStart(kept)
	return kept
}

func sortByPriority(spans []span.Span) {
	// Stable so that equal-priority candidates keep input order.
	sort.SliceStable(spans, func(i, j int) bool {
		return higherPriority(spans[i], spans[j])
	})
}

func higherPriority(a, b span.Span) bool {
	if a.Prob != b.Prob {
		return a.Prob > b.Prob
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Len() > b.Len()
}

func overlapsAny(s span.Span, accepted []span.Span) bool {
	for _, o := range accepted {
		if s.Overlaps(o) {
			return true
		}
	}
	return false
}

// Fuse applies dictionary precedence to the tagger's pruned spans. For each
// statistical span the first gazetteer span it contains replaces it; spans
// containing no gazetteer span pass through unchanged. Gazetteer spans that
// fall inside no statistical span are never independently added. When the
// gazetteer list is empty the statistical spans are returned as-is, order
// preserved. Each statistical span yields exactly one output entry.
func Fuse(statistical, gazetteer []span.Span) []span.Span {
	out := make([]span.Span, 0, len(statistical))
	if len(gazetteer) == 0 {
		return append(out, statistical...)
	}
	for _, s := range statistical {
		replaced := s
		for _, g := range gazetteer {
			if s.Contains(g) {
				replaced = g
				break
			}
		}
		out = append(out, replaced)
	}
	return out
}

// Name is a finalized entity mention: the surface text covered by a span,
// the entity type and the span itself. Names are created once per accepted
// span and never mutated.
type Name struct {
	Text string
	Type string
	Span span.Span
}

// Names materializes one mention per span, in ascending span-start order.
// Every span is validated against the token sequence; a malformed span
// aborts with an error wrapping internalerr.ErrMalformedSpan.
func Names(spans []span.Span, tokens []string) ([]Name, error) {
	ordered := make([]span.Span, len(spans))
	copy(ordered, spans)
	span.SortByStart(ordered)

	names := make([]Name, 0, len(ordered))
	for _, s := range ordered {
		if err := s.Validate(len(tokens)); err != nil {
			return nil, fmt.Errorf("materialize mention: %w", err)
		}
		names = append(names, Name{
			Text: s.Text(tokens),
			Type: s.Label,
			Span: s,
		})
	}
	return names, nil
}
