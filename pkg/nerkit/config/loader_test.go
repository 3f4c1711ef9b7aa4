package config

import (
	"errors"
	"testing"

	"github.com/nerkit/nerkit/pkg/nerkit/internalerr"
)

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	dictPath := writeFile(t, dir, "org.txt", "Bank of America\n")
	writeParams := `
features:
  tokenFeature: "yes"
  window: "2:2"
gazetteers:
  - label: ORG
    path: ` + dictPath + "\n"
	paramsPath := writeFile(t, dir, "params.yaml", writeParams)

	loader := Loader{ParamsPath: paramsPath}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	spans := comp.Gazetteer.Match([]string{"Bank", "of", "America"})
	if len(spans) != 1 || spans[0].Label != "ORG" {
		t.Errorf("gazetteer not assembled: %v", spans)
	}
	if len(comp.Builder.Build().Generators()) != 1 {
		t.Errorf("builder should emit the token generator")
	}
}

func TestLoaderEmptyDictionary(t *testing.T) {
	dir := t.TempDir()
	dictPath := writeFile(t, dir, "empty.txt", "# nothing here\n")
	paramsPath := writeFile(t, dir, "params.yaml", `
gazetteers:
  - label: ORG
    path: `+dictPath+"\n")

	loader := Loader{ParamsPath: paramsPath}
	_, err := loader.Load()
	if !errors.Is(err, internalerr.ErrMissingDictionary) {
		t.Errorf("expected ErrMissingDictionary, got %v", err)
	}
}

func TestLoaderBadWindow(t *testing.T) {
	dir := t.TempDir()
	paramsPath := writeFile(t, dir, "params.yaml", `
features:
  tokenFeature: "yes"
  window: "bad"
`)

	loader := Loader{ParamsPath: paramsPath}
	_, err := loader.Load()
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
