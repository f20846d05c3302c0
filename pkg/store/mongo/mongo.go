// Package mongo implements [store.Store] on MongoDB.
//
// Records are upserted into the "records" collection with _id set to the
// registration number. Each search run is inserted into "searches".
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/bizreg/pkg/entity"
	"github.com/matzehuels/bizreg/pkg/store"
)

// DefaultDatabase is used when Options.Database is empty.
const DefaultDatabase = "bizreg"

const (
	recordsCollection  = "records"
	searchesCollection = "searches"
)

// Options configures a Mongo store.
type Options struct {
	URI      string // mongodb:// connection string
	Database string
}

// Store is a MongoDB-backed store.
type Store struct {
	client   *mongo.Client
	records  *mongo.Collection
	searches *mongo.Collection
}

type recordDoc struct {
	ID            string `bson:"_id"`
	entity.Record `bson:",inline"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// New connects to MongoDB and verifies the connection.
func New(ctx context.Context, opts Options) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	name := opts.Database
	if name == "" {
		name = DefaultDatabase
	}
	db := client.Database(name)
	return &Store{
		client:   client,
		records:  db.Collection(recordsCollection),
		searches: db.Collection(searchesCollection),
	}, nil
}

// SaveSummaries appends the search run to the searches collection.
func (s *Store) SaveSummaries(ctx context.Context, query string, results []entity.Summary) error {
	if _, err := s.searches.InsertOne(ctx, store.NewSearchRun(query, results)); err != nil {
		return fmt.Errorf("mongo: insert search run: %w", err)
	}
	return nil
}

// SaveRecord upserts r keyed by its registration number.
func (s *Store) SaveRecord(ctx context.Context, r *entity.Record) error {
	if err := store.CheckRecord(r); err != nil {
		return err
	}
	doc := recordDoc{ID: r.RegistrationNumber, Record: *r, UpdatedAt: time.Now().UTC()}
	_, err := s.records.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo: upsert record %s: %w", doc.ID, err)
	}
	return nil
}

// Record reads the record stored under id.
func (s *Store) Record(ctx context.Context, id string) (*entity.Record, bool, error) {
	var doc recordDoc
	err := s.records.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo: find record %s: %w", id, err)
	}
	if doc.DocumentImages == nil {
		doc.DocumentImages = []string{}
	}
	return &doc.Record, true, nil
}

// SearchRun returns the newest run of query from the searches collection.
func (s *Store) SearchRun(ctx context.Context, query string) (*store.SearchRun, bool, error) {
	var run store.SearchRun
	opts := options.FindOne().SetSort(bson.D{{Key: "saved_at", Value: -1}})
	err := s.searches.FindOne(ctx, bson.M{"query": query}, opts).Decode(&run)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo: find search run: %w", err)
	}
	if run.Results == nil {
		run.Results = []entity.Summary{}
	}
	return &run, true, nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure Store implements store.Store.
var _ store.Store = (*Store)(nil)
