// Package lookup is the catch-and-log boundary between callers and a
// business registry.
//
// [Service] runs a search or a detail fetch against a [Registry], logs any
// failure, and hands back an empty result instead of an error. Successful
// results are written to a [store.Store] on the way out.
//
//	svc := lookup.New(nydos.NewClient(nydos.Config{State: "NY"}), store.NewNullStore(), logger)
//	for _, s := range svc.Search(ctx, "acme") {
//	    fmt.Println(s.ID, s.Name)
//	}
//
// [store.Store]: github.com/matzehuels/bizreg/pkg/store.Store
package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bizreg/pkg/entity"
	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	"github.com/matzehuels/bizreg/pkg/integrations/nydos"
	"github.com/matzehuels/bizreg/pkg/observability"
	"github.com/matzehuels/bizreg/pkg/store"
)

// Registry is the subset of a registry client the service needs.
// [nydos.Client] implements it.
type Registry interface {
	Search(ctx context.Context, query string, opts nydos.SearchOptions) ([]entity.Summary, error)
	FetchEntity(ctx context.Context, dosID string) (*entity.Record, error)
	FetchEntityByURL(ctx context.Context, url string) (*entity.Record, error)
}

// Service wraps a Registry and a Store.
type Service struct {
	Registry Registry
	Store    store.Store
	Logger   *log.Logger

	// Options is applied by Search. SearchWith overrides it per call.
	Options nydos.SearchOptions
}

// New creates a service. A nil store discards results and a nil logger
// uses log.Default().
func New(registry Registry, st store.Store, logger *log.Logger) *Service {
	if st == nil {
		st = store.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{Registry: registry, Store: st, Logger: logger}
}

// Search runs a name search with the service's default options.
// It never fails: on error the failure is logged and an empty slice is returned.
func (s *Service) Search(ctx context.Context, query string) []entity.Summary {
	return s.SearchWith(ctx, query, s.Options)
}

// SearchWith runs a name search with explicit options.
func (s *Service) SearchWith(ctx context.Context, query string, opts nydos.SearchOptions) []entity.Summary {
	hooks := observability.Lookup()
	hooks.OnSearchStart(ctx, query)
	start := time.Now()

	results, err := s.Registry.Search(ctx, query, opts)
	hooks.OnSearchComplete(ctx, query, len(results), time.Since(start), err)
	if err != nil {
		s.Logger.Error("Error fetching data for query", "query", query, "err", err)
		return []entity.Summary{}
	}
	if results == nil {
		results = []entity.Summary{}
	}

	s.save(ctx, "search", func() error { return s.Store.SaveSummaries(ctx, query, results) })
	return results
}

// Details fetches the record for ref, which is either a DOS ID or a detail
// URL as found in [entity.Summary].URL. On error the failure is logged and
// nil is returned.
func (s *Service) Details(ctx context.Context, ref string) *entity.Record {
	hooks := observability.Lookup()
	hooks.OnDetailsStart(ctx, ref)
	start := time.Now()

	record, err := s.fetch(ctx, ref)
	hooks.OnDetailsComplete(ctx, ref, time.Since(start), err)
	if err != nil {
		s.Logger.Error("Error fetching data for query", "query", ref, "err", err)
		return nil
	}

	s.save(ctx, "record", func() error { return s.Store.SaveRecord(ctx, record) })
	return record
}

// Stored returns a record saved by an earlier Details call.
// Returns a coded ENTITY_NOT_FOUND error if nothing is stored under id.
func (s *Service) Stored(ctx context.Context, id string) (*entity.Record, error) {
	if err := apperrors.ValidateEntityID(id); err != nil {
		return nil, err
	}
	record, ok, err := s.Store.Record(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read stored record %s", id)
	}
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeEntityNotFound, "no stored record for %s", id)
	}
	return record, nil
}

// StoredSearch returns the most recent saved run of query.
// Returns a coded NOT_FOUND error if query was never saved.
func (s *Service) StoredSearch(ctx context.Context, query string) (*store.SearchRun, error) {
	if err := apperrors.ValidateQuery(query); err != nil {
		return nil, err
	}
	run, ok, err := s.Store.SearchRun(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read stored search %q", query)
	}
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "no stored search for %q", query)
	}
	return run, nil
}

// IsURL reports whether ref should be treated as a detail URL.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func (s *Service) fetch(ctx context.Context, ref string) (*entity.Record, error) {
	ref = strings.TrimSpace(ref)
	if IsURL(ref) {
		return s.Registry.FetchEntityByURL(ctx, ref)
	}
	return s.Registry.FetchEntity(ctx, ref)
}

func (s *Service) save(ctx context.Context, kind string, write func() error) {
	err := write()
	observability.Store().OnSave(ctx, backendName(s.Store), kind, err)
	if err != nil {
		s.Logger.Warn("failed to store result", "kind", kind, "err", err)
	}
}

func backendName(st store.Store) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", st), "*")
}
