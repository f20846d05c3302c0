// Package redis implements [store.Store] on Redis.
//
// Records are JSON strings under "<prefix>record:<id>". Search runs are JSON
// strings under "<prefix>search:<sha256(query)>". Neither expires.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/matzehuels/bizreg/pkg/entity"
	"github.com/matzehuels/bizreg/pkg/store"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "bizreg:"

// Store is a Redis-backed store.
type Store struct {
	client goredis.UniversalClient
	prefix string
}

// Options configures a Redis store.
type Options struct {
	Addr     string // host:port
	Password string
	DB       int
	Prefix   string // DefaultPrefix if empty
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", opts.Addr, err)
	}
	return NewWithClient(client, opts.Prefix), nil
}

// NewWithClient wraps an existing client. The store owns it after this call.
func NewWithClient(client goredis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// SaveSummaries stores the search run, replacing an earlier run of the same query.
func (s *Store) SaveSummaries(ctx context.Context, query string, results []entity.Summary) error {
	return s.set(ctx, store.SearchKey(query), store.NewSearchRun(query, results))
}

// SaveRecord stores r under its registration number.
func (s *Store) SaveRecord(ctx context.Context, r *entity.Record) error {
	if err := store.CheckRecord(r); err != nil {
		return err
	}
	return s.set(ctx, store.RecordKey(r.RegistrationNumber), r)
}

// Record reads the record stored under id.
func (s *Store) Record(ctx context.Context, id string) (*entity.Record, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+store.RecordKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get record %s: %w", id, err)
	}

	var r entity.Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, fmt.Errorf("redis: decode record %s: %w", id, err)
	}
	return &r, true, nil
}

// SearchRun reads the last stored run of query.
func (s *Store) SearchRun(ctx context.Context, query string) (*store.SearchRun, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+store.SearchKey(query)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get search run: %w", err)
	}

	var run store.SearchRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, false, fmt.Errorf("redis: decode search run: %w", err)
	}
	return &run, true, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Ensure Store implements store.Store.
var _ store.Store = (*Store)(nil)
