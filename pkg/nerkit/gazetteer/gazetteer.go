// Package gazetteer implements exact-match entity detection over token
// sequences using entity-type-labeled word lists.
package gazetteer

import (
	"strings"

	"github.com/nerkit/nerkit/pkg/nerkit/span"
)

// Dictionary is an immutable, labeled set of multi-token entries.
// All entries of a dictionary share one entity type (its label).
type Dictionary struct {
	label   string
	entries map[string]struct{} // space-joined token sequence
	maxLen  int
}

// NewDictionary builds a dictionary from whitespace-separated phrases.
// Empty phrases are skipped. Matching is case-sensitive.
func NewDictionary(label string, phrases []string) *Dictionary {
	d := &Dictionary{
		label:   label,
		entries: make(map[string]struct{}, len(phrases)),
	}
	for _, p := range phrases {
		toks := strings.Fields(p)
		if len(toks) == 0 {
			continue
		}
		d.entries[strings.Join(toks, " ")] = struct{}{}
		if len(toks) > d.maxLen {
			d.maxLen = len(toks)
		}
	}
	return d
}

// Label returns the entity type assigned to entries of this dictionary.
func (d *Dictionary) Label() string { return d.label }

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// find returns the first (lowest start index) occurrence of any entry as a
// contiguous token run, preferring the longest entry at a given start.
// The second result is false when no entry occurs.
func (d *Dictionary) find(tokens []string) (span.Span, bool) {
	for i := 0; i < len(tokens); i++ {
		max := d.maxLen
		if remaining := len(tokens) - i; max > remaining {
			max = remaining
		}
		for n := max; n >= 1; n-- {
			key := strings.Join(tokens[i:i+n], " ")
			if _, ok := d.entries[key]; ok {
				return span.New(i, i+n, d.label, span.Gazetteer), true
			}
		}
	}
	return span.Span{}, false
}

// Gazetteer is a named, ordered collection of dictionaries. List order is
// significant: it decides which dictionary's span comes first when two
// dictionaries match the same sentence.
type Gazetteer struct {
	dictionaries []*Dictionary
}

// New creates a gazetteer over the given dictionaries, keeping their order.
func New(dictionaries ...*Dictionary) *Gazetteer {
	return &Gazetteer{dictionaries: dictionaries}
}

// Dictionaries returns the dictionary list in match order.
func (g *Gazetteer) Dictionaries() []*Dictionary { return g.dictionaries }

// Match scans the token sequence against every dictionary in list order.
// Each dictionary contributes at most its first match per invocation.
// An empty token sequence yields an empty result. Match never mutates
// its inputs and is safe for concurrent use over distinct sequences.
func (g *Gazetteer) Match(tokens []string) []span.Span {
	var spans []span.Span
	if len(tokens) == 0 {
		return spans
	}
	for _, d := range g.dictionaries {
		if s, ok := d.find(tokens); ok {
			spans = append(spans, s)
		}
	}
	return spans
}
