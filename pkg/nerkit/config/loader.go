package config

import (
	"fmt"

	"github.com/nerkit/nerkit/pkg/nerkit/features"
	"github.com/nerkit/nerkit/pkg/nerkit/gazetteer"
	"github.com/nerkit/nerkit/pkg/nerkit/internalerr"
)

// Loader loads a parameters file and constructs annotation components.
type Loader struct {
	ParamsPath string
}

// Components holds all loaded configuration components.
type Components struct {
	Params    *Params
	Builder   *features.Builder
	Gazetteer *gazetteer.Gazetteer
}

// Load reads the parameters file, parses the feature ranges once and
// assembles the gazetteer from the referenced dictionary files. A
// dictionary file with no usable entries surfaces as an error wrapping
// internalerr.ErrMissingDictionary; callers may treat that as a warning
// and continue with statistical spans only.
func (l *Loader) Load() (*Components, error) {
	params, err := LoadParams(l.ParamsPath)
	if err != nil {
		return nil, fmt.Errorf("load params: %w", err)
	}

	builder, err := features.NewBuilder(params.Features)
	if err != nil {
		return nil, fmt.Errorf("build feature pipeline: %w", err)
	}

	dictionaries := make([]*gazetteer.Dictionary, 0, len(params.Gazetteers))
	for _, ref := range params.Gazetteers {
		phrases, err := LoadDictionary(ref.Path)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %s: %w", ref.Path, err)
		}
		if len(phrases) == 0 {
			return nil, fmt.Errorf("%w: %s (%s)", internalerr.ErrMissingDictionary, ref.Label, ref.Path)
		}
		dictionaries = append(dictionaries, gazetteer.NewDictionary(ref.Label, phrases))
	}

	return &Components{
		Params:    params,
		Builder:   builder,
		Gazetteer: gazetteer.New(dictionaries...),
	}, nil
}
