// Command gazetteer-import loads plain-text dictionary files into the
// SQLite gazetteer store, one labeled dictionary per file.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/nerkit/nerkit/pkg/nerkit/config"
	"github.com/nerkit/nerkit/pkg/nerkit/store/sqlite"
)

func main() {
	var (
		dbPath = flag.String("db", "", "Path to SQLite gazetteer database (required)")
		label  = flag.String("label", "", "Entity type for the imported entries (required)")
		input  = flag.String("input", "", "Dictionary file, one phrase per line (required)")
	)
	flag.Parse()

	if *dbPath == "" || *label == "" || *input == "" {
		log.Fatal("--db, --label and --input are required")
	}

	ctx := context.Background()

	phrases, err := config.LoadDictionary(*input)
	if err != nil {
		log.Fatalf("load dictionary: %v", err)
	}
	if len(phrases) == 0 {
		log.Fatalf("no entries found in %s", *input)
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	if err := st.PutEntries(ctx, *label, phrases); err != nil {
		log.Fatalf("import entries: %v", err)
	}

	log.Printf("Imported %d %s entries from %s into %s", len(phrases), *label, *input, *dbPath)
}
