// Package tagger defines the boundary to the external statistical
// sequence tagger. The training algorithm, beam-search decoder and model
// persistence live behind these interfaces; this repository only builds
// the feature pipeline descriptors they consume and reconciles the spans
// they produce.
package tagger

import (
	"context"

	"github.com/nerkit/nerkit/pkg/nerkit/features"
	"github.com/nerkit/nerkit/pkg/nerkit/span"
)

// DefaultBeamSize is the decoding beam width used when the caller does
// not choose one. A beam of 1 amounts to greedy search.
const DefaultBeamSize = 3

// Tagger decodes one tokenized sentence into labeled spans, extracting
// features per the pipeline descriptor. Implementations guarantee the
// returned spans are non-overlapping per their own pruning rule; callers
// fusing in gazetteer spans must not rely on that afterwards.
type Tagger interface {
	Decode(ctx context.Context, tokens []string, d *features.Descriptor) ([]span.Span, error)
}

// Trainer fits a model on a corpus using the same descriptor that will
// later drive decoding.
type Trainer interface {
	Train(ctx context.Context, corpusPath string, d *features.Descriptor) (Model, error)
}

// Model is an opaque handle to a trained tagger model.
type Model interface {
	// Save persists the model to the given path.
	Save(path string) error
}

// Func adapts a plain function to the Tagger interface.
type Func func(ctx context.Context, tokens []string, d *features.Descriptor) ([]span.Span, error)

// Decode implements Tagger.
func (f Func) Decode(ctx context.Context, tokens []string, d *features.Descriptor) ([]span.Span, error) {
	return f(ctx, tokens, d)
}
