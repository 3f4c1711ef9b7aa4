// Package features compiles a flat set of feature toggles into the nested
// pipeline description the external sequence tagger consumes at training
// and decoding time.
package features

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nerkit/nerkit/pkg/nerkit/internalerr"
)

// Disabled is the sentinel value that turns a feature toggle off. Any
// other value, compared case-insensitively, enables the feature.
const Disabled = "no"

// Defaults for the contextual window and the character n-gram size range.
const (
	DefaultWindow         = "2:2"
	DefaultCharNgramRange = "2:5"
)

// Params is the feature toggle set. Each toggle holds the string "no" to
// disable the feature; window and n-gram ranges are "lo:hi" pairs, also
// accepting space or hyphen as separator.
type Params struct {
	Token          string `yaml:"tokenFeature"`
	TokenClass     string `yaml:"tokenClassFeature"`
	OutcomePrior   string `yaml:"outcomePriorFeature"`
	PreviousMap    string `yaml:"previousMapFeature"`
	Sentence       string `yaml:"sentenceFeature"`
	Prefix         string `yaml:"prefixFeature"`
	Suffix         string `yaml:"suffixFeature"`
	BigramClass    string `yaml:"bigramClassFeature"`
	TrigramClass   string `yaml:"trigramClassFeature"`
	FourgramClass  string `yaml:"fourgramClassFeature"`
	FivegramClass  string `yaml:"fivegramClassFeature"`
	CharNgram      string `yaml:"charNgramFeature"`
	Window         string `yaml:"window"`
	CharNgramRange string `yaml:"charNgramRange"`
}

// enabled reports whether a toggle value differs from the disabled sentinel.
func enabled(v string) bool {
	return v != "" && !strings.EqualFold(v, Disabled)
}

// Range is an inclusive (Lo, Hi) integer pair parsed from configuration.
type Range struct {
	Lo int
	Hi int
}

func isRangeSep(r rune) bool {
	return r == ' ' || r == ':' || r == '-'
}

// parseRange parses a "lo:hi" pair. Anything but exactly two integer
// fields is a configuration error; there is no silent default.
func parseRange(what, s string) (Range, error) {
	fields := strings.FieldsFunc(s, isRangeSep)
	if len(fields) != 2 {
		return Range{}, fmt.Errorf("%w: %s range %q: want two integer fields", internalerr.ErrInvalidConfig, what, s)
	}
	lo, err := strconv.Atoi(fields[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %s range %q: %v", internalerr.ErrInvalidConfig, what, s, err)
	}
	hi, err := strconv.Atoi(fields[1])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %s range %q: %v", internalerr.ErrInvalidConfig, what, s, err)
	}
	return Range{Lo: lo, Hi: hi}, nil
}
