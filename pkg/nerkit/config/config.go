// Package config loads annotation parameters and gazetteer files and
// assembles the components an annotation run needs.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerkit/nerkit/pkg/nerkit/features"
	"github.com/nerkit/nerkit/pkg/nerkit/tagger"
)

// GazetteerRef names one dictionary file and the entity type its entries
// carry. File order in the parameters file decides match precedence.
type GazetteerRef struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Params is the annotation/training parameters file.
type Params struct {
	BeamSize   int             `yaml:"beamSize"`
	Features   features.Params `yaml:"features"`
	Gazetteers []GazetteerRef  `yaml:"gazetteers"`
}

// LoadParams loads a parameters file from a YAML file. A missing or zero
// beam size falls back to the tagger default.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.BeamSize <= 0 {
		p.BeamSize = tagger.DefaultBeamSize
	}
	return &p, nil
}

// LoadDictionary loads a plain-text dictionary file: one phrase per line,
// blank lines and #-comments skipped.
func LoadDictionary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var phrases []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	return phrases, nil
}
