// Package store persists normalized registry output.
//
// A Store records what lookups returned: the summaries of each search run
// and the latest detail record per registration number. It is write-mostly
// and is never consulted to skip a registry request; reads exist for the
// "stored" command and the HTTP API's /v1/records endpoint.
//
// Backends:
//   - [NullStore]: discards everything (the default)
//   - [FileStore]: JSON files under a directory
//   - store/redis, store/mongo, store/sqlite: networked or embedded databases
package store

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/bizreg/pkg/entity"
)

// Store persists normalized search results and detail records.
type Store interface {
	// SaveSummaries records the results of one search run for query.
	SaveSummaries(ctx context.Context, query string, results []entity.Summary) error

	// SaveRecord stores r keyed by its registration number, replacing any
	// earlier copy.
	SaveRecord(ctx context.Context, r *entity.Record) error

	// Record returns the stored record for a registration number.
	// Returns (nil, false, nil) if nothing is stored under id.
	Record(ctx context.Context, id string) (*entity.Record, bool, error)

	// SearchRun returns the most recent stored run of query.
	// Returns (nil, false, nil) if query was never saved.
	SearchRun(ctx context.Context, query string) (*SearchRun, bool, error)

	// Close releases any resources held by the store.
	Close() error
}

// Driver names accepted by configuration.
const (
	DriverNone   = "none"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Drivers lists every supported driver name.
var Drivers = []string{DriverNone, DriverFile, DriverRedis, DriverMongo, DriverSQLite}

// ValidDriver reports whether name is one of [Drivers].
func ValidDriver(name string) bool {
	return slices.Contains(Drivers, name)
}

// SearchRun is the persisted form of one search.
type SearchRun struct {
	Query   string           `json:"query" bson:"query"`
	Results []entity.Summary `json:"results" bson:"results"`
	SavedAt time.Time        `json:"saved_at" bson:"saved_at"`
}

// NewSearchRun stamps a search run with the current time.
// A nil results slice is stored as empty.
func NewSearchRun(query string, results []entity.Summary) SearchRun {
	if results == nil {
		results = []entity.Summary{}
	}
	return SearchRun{Query: query, Results: results, SavedAt: time.Now().UTC()}
}
