package features

import "strconv"

// Node is one element of the pipeline description tree.
type Node interface {
	node()
}

// Aggregate is an ordered list of child generators ("generators" element).
type Aggregate struct {
	Children []Node
}

// Cache wraps a single child whose extracted features the tagger caches.
type Cache struct {
	Child Node
}

// Window wraps one generator, extending it over PrevLength preceding and
// NextLength following tokens.
type Window struct {
	PrevLength int
	NextLength int
	Child      Node
}

// Leaf is a single feature generator, identified by its kind and carrying
// its static attributes in emission order.
type Leaf struct {
	Kind  string
	Attrs []Attr
}

// Attr is a named static parameter of a leaf generator.
type Attr struct {
	Name  string
	Value string
}

func (Aggregate) node() {}
func (Cache) node()     {}
func (Window) node()    {}
func (Leaf) node()      {}

// Leaf generator kinds, in the fixed priority order the builder emits them.
const (
	KindToken         = "token"
	KindTokenClass    = "tokenclass"
	KindOutcomePrior  = "outcomeprior"
	KindPreviousMap   = "prevmap"
	KindSentence      = "sentence"
	KindPrefix        = "prefix"
	KindSuffix        = "suffix"
	KindBigramClass   = "bigramclass"
	KindTrigramClass  = "trigramclass"
	KindFourgramClass = "fourgramclass"
	KindFivegramClass = "fivegramclass"
	KindCharNgram     = "charngram"
)

// Descriptor is the complete pipeline description: an aggregate root
// wrapping a single cache node wrapping the ordered generator list. That
// nesting is a compatibility contract with the external tagger and is
// produced even when no feature is enabled.
type Descriptor struct {
	Root Aggregate
}

// Generators returns the ordered generator list inside the cache node.
func (d *Descriptor) Generators() []Node {
	cache := d.Root.Children[0].(Cache)
	return cache.Child.(Aggregate).Children
}

// Builder compiles a Params record into a Descriptor. The window and
// character n-gram ranges are parsed once at construction, so a Builder
// is immutable afterwards and safe to reuse and share between goroutines.
type Builder struct {
	params Params
	window Range
	ngram  Range
}

// NewBuilder validates and caches the numeric ranges the enabled toggles
// require. Ranges left empty fall back to the package defaults; a range
// that does not parse as two integers yields an error wrapping
// internalerr.ErrInvalidConfig.
func NewBuilder(p Params) (*Builder, error) {
	b := &Builder{params: p}

	if enabled(p.Token) || enabled(p.TokenClass) {
		w := p.Window
		if w == "" {
			w = DefaultWindow
		}
		r, err := parseRange("window", w)
		if err != nil {
			return nil, err
		}
		b.window = r
	}
	if enabled(p.CharNgram) {
		n := p.CharNgramRange
		if n == "" {
			n = DefaultCharNgramRange
		}
		r, err := parseRange("char n-gram", n)
		if err != nil {
			return nil, err
		}
		b.ngram = r
	}
	return b, nil
}

// Window returns the parsed contextual window range.
func (b *Builder) Window() Range { return b.window }

// Build emits the pipeline description for the builder's toggle set.
// Feature order is fixed: token, token class, outcome prior, previous map,
// sentence, prefix, suffix, bigram, trigram, fourgram, fivegram, char
// n-gram. Build is pure and may be called repeatedly.
func (b *Builder) Build() *Descriptor {
	var gens []Node
	p := b.params

	if enabled(p.Token) {
		gens = append(gens, b.windowed(Leaf{Kind: KindToken}))
	}
	if enabled(p.TokenClass) {
		gens = append(gens, b.windowed(Leaf{Kind: KindTokenClass}))
	}
	if enabled(p.OutcomePrior) {
		gens = append(gens, Leaf{Kind: KindOutcomePrior})
	}
	if enabled(p.PreviousMap) {
		gens = append(gens, Leaf{Kind: KindPreviousMap})
	}
	if enabled(p.Sentence) {
		gens = append(gens, Leaf{
			Kind: KindSentence,
			Attrs: []Attr{
				{Name: "begin", Value: "true"},
				{Name: "end", Value: "false"},
			},
		})
	}
	if enabled(p.Prefix) {
		gens = append(gens, Leaf{Kind: KindPrefix})
	}
	if enabled(p.Suffix) {
		gens = append(gens, Leaf{Kind: KindSuffix})
	}
	if enabled(p.BigramClass) {
		gens = append(gens, Leaf{Kind: KindBigramClass})
	}
	if enabled(p.TrigramClass) {
		gens = append(gens, Leaf{Kind: KindTrigramClass})
	}
	if enabled(p.FourgramClass) {
		gens = append(gens, Leaf{Kind: KindFourgramClass})
	}
	if enabled(p.FivegramClass) {
		gens = append(gens, Leaf{Kind: KindFivegramClass})
	}
	if enabled(p.CharNgram) {
		gens = append(gens, Leaf{
			Kind: KindCharNgram,
			Attrs: []Attr{
				{Name: "minLength", Value: strconv.Itoa(b.ngram.Lo)},
				{Name: "maxLength", Value: strconv.Itoa(b.ngram.Hi)},
			},
		})
	}

	return &Descriptor{
		Root: Aggregate{
			Children: []Node{
				Cache{Child: Aggregate{Children: gens}},
			},
		},
	}
}

func (b *Builder) windowed(leaf Leaf) Node {
	return Window{
		PrevLength: b.window.Lo,
		NextLength: b.window.Hi,
		Child:      leaf,
	}
}

// Build is a convenience wrapper constructing a one-shot builder.
func Build(p Params) (*Descriptor, error) {
	b, err := NewBuilder(p)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}
