//go:build integration

package nydos

import (
	"context"
	"testing"
	"time"
)

func TestSearch_Integration(t *testing.T) {
	client := NewClient(Config{State: "NY"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := client.Search(ctx, "GOOGLE", SearchOptions{})
	if err != nil {
		t.Fatalf("Search(GOOGLE) error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if len(results) > listEndRecord {
		t.Errorf("got %d results, page size is %d", len(results), listEndRecord)
	}

	record, err := client.FetchEntityByURL(ctx, results[0].URL)
	if err != nil {
		t.Fatalf("FetchEntityByURL(%s) error: %v", results[0].URL, err)
	}
	if record.RegistrationNumber != results[0].ID {
		t.Errorf("registration number %q != search id %q", record.RegistrationNumber, results[0].ID)
	}
}
