// Package nerkit annotates tokenized text with named-entity mentions by
// combining a statistical sequence tagger with gazetteer lookups.
//
// Three finder variants are provided: Statistical (tagger only),
// Gazetteer (dictionary matching only) and Hybrid (tagger spans fused
// with dictionary spans under dictionary precedence).
package nerkit

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/nerkit/nerkit/pkg/nerkit/features"
	"github.com/nerkit/nerkit/pkg/nerkit/gazetteer"
	"github.com/nerkit/nerkit/pkg/nerkit/reconcile"
	"github.com/nerkit/nerkit/pkg/nerkit/tagger"
)

// NameFinder locates named-entity mentions in one tokenized sentence.
// The token sequence is owned by the caller and never mutated.
type NameFinder interface {
	FindNames(ctx context.Context, tokens []string) ([]reconcile.Name, error)
}

// StatisticalFinder runs the sequence tagger and prunes its candidate
// spans to a non-overlapping set.
type StatisticalFinder struct {
	tagger     tagger.Tagger
	descriptor *features.Descriptor
}

// NewStatisticalFinder creates a finder over the given tagger and
// pipeline descriptor.
func NewStatisticalFinder(t tagger.Tagger, d *features.Descriptor) *StatisticalFinder {
	return &StatisticalFinder{tagger: t, descriptor: d}
}

// FindNames implements NameFinder.
func (f *StatisticalFinder) FindNames(ctx context.Context, tokens []string) ([]reconcile.Name, error) {
	spans, err := f.tagger.Decode(ctx, tokens, f.descriptor)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return reconcile.Names(reconcile.PruneOverlaps(spans), tokens)
}

// GazetteerFinder detects entities by exact dictionary matching only.
type GazetteerFinder struct {
	gazetteer *gazetteer.Gazetteer
}

// NewGazetteerFinder creates a finder over the given gazetteer.
func NewGazetteerFinder(g *gazetteer.Gazetteer) *GazetteerFinder {
	return &GazetteerFinder{gazetteer: g}
}

// FindNames implements NameFinder.
func (f *GazetteerFinder) FindNames(ctx context.Context, tokens []string) ([]reconcile.Name, error) {
	spans := reconcile.PruneOverlaps(f.gazetteer.Match(tokens))
	return reconcile.Names(spans, tokens)
}

// HybridFinder fuses pruned tagger spans with gazetteer spans: a
// dictionary hit inside a statistical span replaces it.
type HybridFinder struct {
	tagger     tagger.Tagger
	descriptor *features.Descriptor
	gazetteer  *gazetteer.Gazetteer
}

// NewHybridFinder creates a finder combining a tagger with a gazetteer.
func NewHybridFinder(t tagger.Tagger, d *features.Descriptor, g *gazetteer.Gazetteer) *HybridFinder {
	return &HybridFinder{tagger: t, descriptor: d, gazetteer: g}
}

// FindNames implements NameFinder.
func (f *HybridFinder) FindNames(ctx context.Context, tokens []string) ([]reconcile.Name, error) {
	decoded, err := f.tagger.Decode(ctx, tokens, f.descriptor)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	pruned := reconcile.PruneOverlaps(decoded)
	fused := reconcile.Fuse(pruned, f.gazetteer.Match(tokens))
	return reconcile.Names(fused, tokens)
}

// Annotation is the result of one annotation run over one sentence.
type Annotation struct {
	ID     string
	Tokens []string
	Names  []reconcile.Name
}

// Annotator wraps a NameFinder, stamping each run with a ULID.
type Annotator struct {
	finder  NameFinder
	entropy *ulid.MonotonicEntropy
}

// NewAnnotator creates an annotator over the given finder.
func NewAnnotator(f NameFinder) *Annotator {
	return &Annotator{
		finder:  f,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Annotate runs the finder over one sentence.
func (a *Annotator) Annotate(ctx context.Context, tokens []string) (Annotation, error) {
	names, err := a.finder.FindNames(ctx, tokens)
	if err != nil {
		return Annotation{}, err
	}
	return Annotation{
		ID:     ulid.MustNew(ulid.Now(), a.entropy).String(),
		Tokens: tokens,
		Names:  names,
	}, nil
}
