package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bizreg/pkg/entity"
)

// ReadSummaries decodes a JSON array of summaries from r.
//
// Entries without an id or url are rejected since they cannot be looked up.
// A null document decodes to an empty slice. ReadSummaries does not close r.
func ReadSummaries(r io.Reader) ([]entity.Summary, error) {
	var data []entity.Summary
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, s := range data {
		if s.ID == "" && s.URL == "" {
			return nil, fmt.Errorf("summary %d: missing id and url", i)
		}
	}
	if data == nil {
		data = []entity.Summary{}
	}
	return data, nil
}

// ImportSummaries reads a JSON file at path written by [ExportJSON] from a
// search result list.
func ImportSummaries(path string) ([]entity.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSummaries(f)
}
