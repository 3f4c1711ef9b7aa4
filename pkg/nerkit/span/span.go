// Package span defines the token-interval value type shared by the
// gazetteer matcher, the statistical tagger boundary and the reconciler.
//
// A Span is a half-open interval [Start, End) over a tokenized sentence,
// tagged with an entity label and the provenance of the detection.
package span

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nerkit/nerkit/pkg/nerkit/internalerr"
)

// Source identifies which subsystem produced a span.
type Source int

const (
	// Statistical marks spans decoded by the sequence tagger.
	Statistical Source = iota
	// Gazetteer marks spans found by exact dictionary matching.
	Gazetteer
)

// sourceNames maps Source values to their string names.
var sourceNames = [...]string{
	Statistical: "statistical",
	Gazetteer:   "gazetteer",
}

// String returns the name of the source.
func (s Source) String() string {
	if int(s) >= 0 && int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Span is a half-open token interval [Start, End) with an entity label.
// Spans are value types; the zero value is not valid (Start == End).
type Span struct {
	Start  int
	End    int
	Label  string
	Source Source
	Prob   float64
}

// New creates a span over [start, end) with the given label and source.
func New(start, end int, label string, source Source) Span {
	return Span{Start: start, End: end, Label: label, Source: source}
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether the two intervals intersect.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether o is a subset of s, equal endpoints included.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Validate checks the interval invariant 0 <= Start < End <= tokenCount.
// It returns an error wrapping internalerr.ErrMalformedSpan on violation.
func (s Span) Validate(tokenCount int) error {
	if s.Start < 0 || s.Start >= s.End || s.End > tokenCount {
		return fmt.Errorf("%w: [%d,%d) over %d tokens", internalerr.ErrMalformedSpan, s.Start, s.End, tokenCount)
	}
	return nil
}

// Text returns the surface form covered by the span, joining tokens
// with single spaces. The caller must have validated the span.
func (s Span) Text(tokens []string) string {
	return strings.Join(tokens[s.Start:s.End], " ")
}

// String returns a debug representation, e.g. ORG[0:3](gazetteer).
func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d](%s)", s.Label, s.Start, s.End, s.Source)
}

// SortByStart orders spans by start index, breaking ties by longer span first.
func SortByStart(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].Len() > spans[j].Len()
	})
}
