// Command gazetteer-fetch downloads an HTML page and extracts its list
// items into a plain-text dictionary file usable by gazetteer-import.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/nerkit/nerkit/internal/fetch"
)

func main() {
	var (
		url    = flag.String("url", "", "Page to extract list items from (required)")
		output = flag.String("output", "", "Dictionary file to write (required)")
	)
	flag.Parse()

	if *url == "" || *output == "" {
		log.Fatal("--url and --output are required")
	}

	items, err := fetch.Fetch(context.Background(), *url)
	if err != nil {
		log.Fatalf("fetch: %v", err)
	}
	if len(items) == 0 {
		log.Fatalf("no list items found at %s", *url)
	}

	content := strings.Join(items, "\n") + "\n"
	if err := os.WriteFile(*output, []byte(content), 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}

	log.Printf("Wrote %d entries to %s", len(items), *output)
}
