package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/matzehuels/bizreg/pkg/entity"
)

// FileStore implements a file-based store for CLI usage.
// Entries are JSON files in a directory, named by key hash and sharded by the
// first two hex characters to avoid too many files in one directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the root directory of the store.
func (s *FileStore) Dir() string { return s.dir }

// SaveSummaries writes the search run, replacing an earlier run of the same query.
func (s *FileStore) SaveSummaries(ctx context.Context, query string, results []entity.Summary) error {
	return s.write(SearchKey(query), NewSearchRun(query, results))
}

// SaveRecord writes r under its registration number.
func (s *FileStore) SaveRecord(ctx context.Context, r *entity.Record) error {
	if err := CheckRecord(r); err != nil {
		return err
	}
	return s.write(RecordKey(r.RegistrationNumber), r)
}

// Record reads the record stored under id.
func (s *FileStore) Record(ctx context.Context, id string) (*entity.Record, bool, error) {
	var r entity.Record
	ok, err := s.read(RecordKey(id), &r)
	if !ok || err != nil {
		return nil, false, err
	}
	return &r, true, nil
}

// SearchRun reads the last stored run of query.
func (s *FileStore) SearchRun(ctx context.Context, query string) (*SearchRun, bool, error) {
	var run SearchRun
	ok, err := s.read(SearchKey(query), &run)
	if !ok || err != nil {
		return nil, false, err
	}
	return &run, true, nil
}

// Close does nothing for file store.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Each writer gets its own temp file; rename is atomic, last writer wins.
	tmp, err := os.CreateTemp(filepath.Dir(path), "*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *FileStore) read(key string, v any) (bool, error) {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Corrupt entry - treat as missing
		_ = os.Remove(path)
		return false, nil
	}
	return true, nil
}

// path converts a key to a file path.
func (s *FileStore) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(s.dir, hash[:2], hash[2:]+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
