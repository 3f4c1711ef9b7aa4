package fetch

import (
	"reflect"
	"strings"
	"testing"
)

func TestListItems(t *testing.T) {
	page := `<html><body>
<h1>Organizations</h1>
<ul>
  <li>Bank of <b>America</b></li>
  <li>  ACME Corp  </li>
  <li></li>
</ul>
</body></html>`

	got, err := ListItems(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}

	want := []string{"Bank of America", "ACME Corp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListItems = %v, want %v", got, want)
	}
}

func TestListItemsNestedLists(t *testing.T) {
	page := `<ul><li>Europe<ul><li>Paris</li></ul></li></ul>`

	got, err := ListItems(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}

	// Outer items absorb their nested content; nested lists are not
	// walked separately.
	if len(got) != 1 || !strings.HasPrefix(got[0], "Europe") {
		t.Errorf("ListItems = %v", got)
	}
}

func TestListItemsNoLists(t *testing.T) {
	got, err := ListItems(strings.NewReader("<p>no lists here</p>"))
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no items, got %v", got)
	}
}
