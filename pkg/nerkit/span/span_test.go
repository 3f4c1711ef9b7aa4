package span

import (
	"errors"
	"testing"

	"github.com/nerkit/nerkit/pkg/nerkit/internalerr"
)

func TestOverlaps(t *testing.T) {
	a := New(0, 3, "ORG", Statistical)
	b := New(1, 2, "PER", Statistical)
	c := New(3, 5, "LOC", Statistical)

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("nested spans should overlap")
	}
	if a.Overlaps(c) || c.Overlaps(a) {
		t.Error("adjacent spans share no token and should not overlap")
	}
}

func TestContains(t *testing.T) {
	outer := New(0, 3, "ORG", Statistical)
	inner := New(1, 2, "PER", Gazetteer)

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	// Equal endpoints count as containment.
	if !outer.Contains(outer) {
		t.Error("a span should contain itself")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		span   Span
		tokens int
		ok     bool
	}{
		{"valid", New(0, 3, "ORG", Statistical), 5, true},
		{"full sequence", New(0, 5, "ORG", Statistical), 5, true},
		{"empty interval", New(2, 2, "ORG", Statistical), 5, false},
		{"inverted", New(3, 1, "ORG", Statistical), 5, false},
		{"negative start", New(-1, 2, "ORG", Statistical), 5, false},
		{"past end", New(3, 6, "ORG", Statistical), 5, false},
	}

	for _, tt := range tests {
		err := tt.span.Validate(tt.tokens)
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			} else if !errors.Is(err, internalerr.ErrMalformedSpan) {
				t.Errorf("%s: error should wrap ErrMalformedSpan, got %v", tt.name, err)
			}
		}
	}
}

func TestText(t *testing.T) {
	tokens := []string{"Bank", "of", "America", "reported", "profit"}
	s := New(0, 3, "ORG", Gazetteer)

	if got := s.Text(tokens); got != "Bank of America" {
		t.Errorf("Text = %q, want %q", got, "Bank of America")
	}
}

func TestSortByStart(t *testing.T) {
	spans := []Span{
		New(3, 5, "LOC", Statistical),
		New(0, 1, "PER", Statistical),
		New(0, 3, "ORG", Gazetteer),
	}
	SortByStart(spans)

	if spans[0].Label != "ORG" || spans[1].Label != "PER" || spans[2].Label != "LOC" {
		t.Errorf("unexpected order: %v", spans)
	}
}
