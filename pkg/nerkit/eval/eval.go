// Package eval scores predicted entity mentions against a gold standard
// using exact span-and-type matching.
package eval

import (
	"fmt"
	"sort"

	"github.com/nerkit/nerkit/pkg/nerkit/span"
)

// Counts accumulates exact-match tallies.
type Counts struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
}

// Precision returns TP / (TP + FP), or 0 when nothing was predicted.
func (c Counts) Precision() float64 {
	total := c.TruePositives + c.FalsePositives
	if total == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(total)
}

// Recall returns TP / (TP + FN), or 0 when the gold set is empty.
func (c Counts) Recall() float64 {
	total := c.TruePositives + c.FalseNegatives
	if total == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(total)
}

// F1 returns the harmonic mean of precision and recall.
func (c Counts) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Scorer accumulates counts over sentences, overall and per entity type.
type Scorer struct {
	overall Counts
	byType  map[string]*Counts
}

// NewScorer creates an empty scorer.
func NewScorer() *Scorer {
	return &Scorer{byType: make(map[string]*Counts)}
}

// Add scores one sentence. A predicted span counts as a true positive
// when a gold span has the same interval and label.
func (s *Scorer) Add(gold, predicted []span.Span) {
	type key struct {
		start, end int
		label      string
	}
	goldSet := make(map[key]bool, len(gold))
	for _, g := range gold {
		goldSet[key{g.Start, g.End, g.Label}] = false
	}

	for _, p := range predicted {
		k := key{p.Start, p.End, p.Label}
		if matched, ok := goldSet[k]; ok && !matched {
			goldSet[k] = true
			s.overall.TruePositives++
			s.typeCounts(p.Label).TruePositives++
		} else {
			s.overall.FalsePositives++
			s.typeCounts(p.Label).FalsePositives++
		}
	}
	for k, matched := range goldSet {
		if !matched {
			s.overall.FalseNegatives++
			s.typeCounts(k.label).FalseNegatives++
		}
	}
}

func (s *Scorer) typeCounts(label string) *Counts {
	c, ok := s.byType[label]
	if !ok {
		c = &Counts{}
		s.byType[label] = c
	}
	return c
}

// Overall returns the accumulated counts across all types.
func (s *Scorer) Overall() Counts { return s.overall }

// TypeCounts returns the counts for one entity type.
func (s *Scorer) TypeCounts(label string) Counts {
	if c, ok := s.byType[label]; ok {
		return *c
	}
	return Counts{}
}

// Report renders a brief per-type breakdown followed by the overall line.
func (s *Scorer) Report() string {
	labels := make([]string, 0, len(s.byType))
	for label := range s.byType {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var out string
	for _, label := range labels {
		c := s.byType[label]
		out += fmt.Sprintf("%-8s P=%.4f R=%.4f F1=%.4f\n", label, c.Precision(), c.Recall(), c.F1())
	}
	out += fmt.Sprintf("%-8s P=%.4f R=%.4f F1=%.4f\n", "TOTAL", s.overall.Precision(), s.overall.Recall(), s.overall.F1())
	return out
}
