// Package source loads documents and queries from external carriers
// (YAML/JSON files, CUE files, and SQLite tables) into the value model.
//
// Nothing here touches match semantics: sources produce plain values and
// the engine treats them like any caller-constructed document.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sieve/internal/value"
)

// ReadDocuments loads documents from a YAML or JSON file. A top-level
// sequence yields one document per entry; a top-level mapping yields a
// single document.
func ReadDocuments(path string) ([]value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if list, isList := raw.([]any); isList {
		docs := make([]value.Value, len(list))
		for i, entry := range list {
			doc, err := value.FromAny(entry)
			if err != nil {
				return nil, fmt.Errorf("%s: document %d: %w", path, i, err)
			}
			docs[i] = doc
		}
		return docs, nil
	}

	doc, err := value.FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return []value.Value{doc}, nil
}

// ParseQuery parses an inline query expression. YAML is a JSON superset,
// so both `{age: {$gt: 28}}` and strict JSON work.
func ParseQuery(expr string) (value.Value, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(expr), &raw); err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	q, err := value.FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return q, nil
}

// ReadQuery loads a query from a file. ".cue" files go through the CUE
// evaluator; anything else is parsed as YAML/JSON.
func ReadQuery(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read query: %w", err)
	}

	if filepath.Ext(path) == ".cue" {
		return parseCUEQuery(path, data)
	}
	return ParseQuery(string(data))
}
