package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

// TestSQLiteIntegrationBasic tests basic dictionary round-trips.
func TestSQLiteIntegrationBasic(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gazetteer.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if err := st.PutEntries(ctx, "ORG", []string{"Bank of America", "ACME Corp"}); err != nil {
		t.Fatalf("PutEntries: %v", err)
	}
	if err := st.PutEntries(ctx, "LOC", []string{"Paris"}); err != nil {
		t.Fatalf("PutEntries: %v", err)
	}

	got, err := st.Entries(ctx, "ORG")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	want := []string{"ACME Corp", "Bank of America"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries = %v, want %v", got, want)
	}

	labels, err := st.Labels(ctx)
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if !reflect.DeepEqual(labels, []string{"LOC", "ORG"}) {
		t.Errorf("Labels = %v", labels)
	}
}

// TestSQLiteIntegrationDuplicates verifies conflict handling across
// reopened connections.
func TestSQLiteIntegrationDuplicates(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gazetteer.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := st.PutEntries(ctx, "PER", []string{"John Smith"}); err != nil {
		t.Fatalf("PutEntries: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	if err := st.PutEntries(ctx, "PER", []string{"John Smith", "Jane Doe"}); err != nil {
		t.Fatalf("PutEntries after reopen: %v", err)
	}

	got, err := st.Entries(ctx, "PER")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 unique entries, got %v", got)
	}
}

func TestSQLiteEntriesUnknownLabel(t *testing.T) {
	ctx := context.Background()

	st, err := Open(ctx, filepath.Join(t.TempDir(), "gazetteer.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	got, err := st.Entries(ctx, "NOPE")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown label should yield no entries, got %v", got)
	}
}
