// Command nerkit tags whitespace-tokenized sentences from stdin with
// named-entity mentions found by gazetteer matching, one JSON record per
// sentence. With -print-descriptor it instead emits the XML feature
// pipeline descriptor for the configured toggles, ready to hand to the
// external tagger's training tool.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nerkit/nerkit/pkg/nerkit"
	"github.com/nerkit/nerkit/pkg/nerkit/config"
	"github.com/nerkit/nerkit/pkg/nerkit/internalerr"
	"github.com/nerkit/nerkit/pkg/nerkit/reconcile"
)

type sentenceJSON struct {
	ID       string        `json:"id"`
	Tokens   []string      `json:"tokens"`
	Mentions []mentionJSON `json:"mentions"`
}

type mentionJSON struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func main() {
	var (
		paramsPath      = flag.String("params", "", "Path to parameters YAML file (required)")
		printDescriptor = flag.Bool("print-descriptor", false, "Print the XML feature descriptor and exit")
	)
	flag.Parse()

	if *paramsPath == "" {
		log.Fatal("--params required")
	}

	loader := config.Loader{ParamsPath: *paramsPath}
	components, err := loader.Load()
	if err != nil {
		if errors.Is(err, internalerr.ErrMissingDictionary) {
			log.Fatalf("gazetteer unavailable: %v", err)
		}
		log.Fatalf("load configs: %v", err)
	}

	if *printDescriptor {
		xml, err := components.Builder.Build().XML()
		if err != nil {
			log.Fatalf("serialize descriptor: %v", err)
		}
		fmt.Println(xml)
		return
	}

	annotator := nerkit.NewAnnotator(nerkit.NewGazetteerFinder(components.Gazetteer))
	ctx := context.Background()

	scanner := bufio.NewScanner(os.Stdin)
	enc := json.NewEncoder(os.Stdout)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		annotation, err := annotator.Annotate(ctx, tokens)
		if err != nil {
			log.Fatalf("annotate: %v", err)
		}

		if err := enc.Encode(toJSON(annotation)); err != nil {
			log.Fatalf("encode: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}

func toJSON(a nerkit.Annotation) sentenceJSON {
	out := sentenceJSON{
		ID:       a.ID,
		Tokens:   a.Tokens,
		Mentions: make([]mentionJSON, len(a.Names)),
	}
	for i, n := range a.Names {
		out.Mentions[i] = toMentionJSON(n)
	}
	return out
}

func toMentionJSON(n reconcile.Name) mentionJSON {
	return mentionJSON{
		Text:  n.Text,
		Type:  n.Type,
		Start: n.Span.Start,
		End:   n.Span.End,
	}
}
