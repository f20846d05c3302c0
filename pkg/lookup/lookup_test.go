package lookup

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bizreg/pkg/entity"
	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	"github.com/matzehuels/bizreg/pkg/integrations"
	"github.com/matzehuels/bizreg/pkg/integrations/nydos"
	"github.com/matzehuels/bizreg/pkg/observability"
	"github.com/matzehuels/bizreg/pkg/store"
)

type fakeRegistry struct {
	summaries []entity.Summary
	record    *entity.Record
	err       error

	gotOpts nydos.SearchOptions
	gotID   string
	gotURL  string
}

func (f *fakeRegistry) Search(ctx context.Context, query string, opts nydos.SearchOptions) ([]entity.Summary, error) {
	f.gotOpts = opts
	return f.summaries, f.err
}

func (f *fakeRegistry) FetchEntity(ctx context.Context, id string) (*entity.Record, error) {
	f.gotID = id
	return f.record, f.err
}

func (f *fakeRegistry) FetchEntityByURL(ctx context.Context, url string) (*entity.Record, error) {
	f.gotURL = url
	return f.record, f.err
}

type memStore struct {
	mu       sync.Mutex
	searches map[string][]entity.Summary
	records  map[string]*entity.Record
	saveErr  error
	readErr  error
}

func newMemStore() *memStore {
	return &memStore{searches: map[string][]entity.Summary{}, records: map[string]*entity.Record{}}
}

func (m *memStore) SaveSummaries(ctx context.Context, query string, results []entity.Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.searches[query] = results
	return nil
}

func (m *memStore) SaveRecord(ctx context.Context, r *entity.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[r.RegistrationNumber] = r
	return nil
}

func (m *memStore) Record(ctx context.Context, id string) (*entity.Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	r, ok := m.records[id]
	return r, ok, nil
}

func (m *memStore) SearchRun(ctx context.Context, query string) (*store.SearchRun, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	results, ok := m.searches[query]
	if !ok {
		return nil, false, nil
	}
	run := store.NewSearchRun(query, results)
	return &run, true, nil
}

func (m *memStore) Close() error { return nil }

var _ store.Store = (*memStore)(nil)

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func TestSearch(t *testing.T) {
	reg := &fakeRegistry{summaries: []entity.Summary{{State: "NY", Name: "ACME", ID: "1"}}}
	st := newMemStore()
	logger, _ := testLogger()
	svc := New(reg, st, logger)
	svc.Options = nydos.SearchOptions{Status: nydos.StatusActive}

	got := svc.Search(context.Background(), "acme")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Search = %+v", got)
	}
	if reg.gotOpts.Status != nydos.StatusActive {
		t.Errorf("default options not applied: %+v", reg.gotOpts)
	}
	if len(st.searches["acme"]) != 1 {
		t.Error("search run should be stored")
	}
}

func TestSearchSwallowsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network", integrations.ErrNetwork},
		{"server", integrations.ErrServer},
		{"request status", nydos.ErrRequestStatus},
		{"decode", integrations.ErrDecode},
		{"validation", apperrors.New(apperrors.ErrCodeInvalidQuery, "search query cannot be empty")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &fakeRegistry{err: tt.err}
			st := newMemStore()
			logger, buf := testLogger()

			got := New(reg, st, logger).Search(context.Background(), "acme")
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty non-nil slice, got %#v", got)
			}
			if !strings.Contains(buf.String(), "Error fetching data for query") {
				t.Errorf("expected error log, got %q", buf.String())
			}
			if !strings.Contains(buf.String(), "acme") {
				t.Errorf("log should name the query, got %q", buf.String())
			}
			if len(st.searches) != 0 {
				t.Error("failed search should not be stored")
			}
		})
	}
}

func TestSearchNilResults(t *testing.T) {
	logger, _ := testLogger()
	got := New(&fakeRegistry{}, nil, logger).Search(context.Background(), "acme")
	if got == nil {
		t.Error("expected empty non-nil slice")
	}
}

func TestSearchStoreFailureIsLogged(t *testing.T) {
	reg := &fakeRegistry{summaries: []entity.Summary{{ID: "1"}}}
	st := newMemStore()
	st.saveErr = errors.New("disk full")
	logger, buf := testLogger()

	got := New(reg, st, logger).Search(context.Background(), "acme")
	if len(got) != 1 {
		t.Errorf("store failure must not affect results, got %+v", got)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("expected store failure in log, got %q", buf.String())
	}
}

func TestDetails(t *testing.T) {
	record := entity.NewRecord("NY")
	record.RegistrationNumber = "5123456"
	record.Name = "ACME WIDGETS LLC"

	tests := []struct {
		name    string
		ref     string
		wantID  string
		wantURL string
	}{
		{"by id", "5123456", "5123456", ""},
		{"by url", "https://example.com/GetEntityRecordByID/5123456", "", "https://example.com/GetEntityRecordByID/5123456"},
		{"padded", "  5123456 ", "5123456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &fakeRegistry{record: record}
			st := newMemStore()
			logger, _ := testLogger()

			got := New(reg, st, logger).Details(context.Background(), tt.ref)
			if got == nil || got.Name != "ACME WIDGETS LLC" {
				t.Fatalf("Details = %+v", got)
			}
			if reg.gotID != tt.wantID || reg.gotURL != tt.wantURL {
				t.Errorf("dispatch: id=%q url=%q", reg.gotID, reg.gotURL)
			}
			if st.records["5123456"] == nil {
				t.Error("record should be stored")
			}
		})
	}
}

func TestDetailsSwallowsErrors(t *testing.T) {
	reg := &fakeRegistry{err: integrations.ErrNotFound}
	logger, buf := testLogger()

	got := New(reg, nil, logger).Details(context.Background(), "5123456")
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
	if !strings.Contains(buf.String(), "Error fetching data for query") {
		t.Errorf("expected error log, got %q", buf.String())
	}
}

func TestStored(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	r := entity.NewRecord("NY")
	r.RegistrationNumber = "42"
	st.records["42"] = r
	logger, _ := testLogger()
	svc := New(&fakeRegistry{}, st, logger)

	got, err := svc.Stored(ctx, "42")
	if err != nil || got != r {
		t.Errorf("Stored(42) = %v, %v", got, err)
	}

	_, err = svc.Stored(ctx, "43")
	if !apperrors.Is(err, apperrors.ErrCodeEntityNotFound) {
		t.Errorf("expected ENTITY_NOT_FOUND, got %v", err)
	}

	_, err = svc.Stored(ctx, "../etc")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidEntityID) {
		t.Errorf("expected INVALID_ENTITY_ID, got %v", err)
	}

	st.readErr = errors.New("boom")
	_, err = svc.Stored(ctx, "42")
	if !apperrors.Is(err, apperrors.ErrCodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}

func TestStoredSearch(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	logger, _ := testLogger()
	reg := &fakeRegistry{summaries: []entity.Summary{{State: "NY", Name: "ACME", ID: "1"}}}
	svc := New(reg, st, logger)

	svc.Search(ctx, "acme")

	run, err := svc.StoredSearch(ctx, "acme")
	if err != nil {
		t.Fatalf("StoredSearch error: %v", err)
	}
	if run.Query != "acme" || len(run.Results) != 1 || run.Results[0].ID != "1" {
		t.Errorf("unexpected run %+v", run)
	}

	_, err = svc.StoredSearch(ctx, "never searched")
	if !apperrors.Is(err, apperrors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}

	_, err = svc.StoredSearch(ctx, "   ")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidQuery) {
		t.Errorf("expected INVALID_QUERY, got %v", err)
	}

	st.readErr = errors.New("boom")
	_, err = svc.StoredSearch(ctx, "acme")
	if !apperrors.Is(err, apperrors.ErrCodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}

type recordingHooks struct {
	observability.NoopLookupHooks
	observability.NoopStoreHooks
	searches int
	details  int
	saves    []string
}

func (h *recordingHooks) OnSearchComplete(context.Context, string, int, time.Duration, error) {
	h.searches++
}

func (h *recordingHooks) OnDetailsComplete(context.Context, string, time.Duration, error) {
	h.details++
}

func (h *recordingHooks) OnSave(_ context.Context, backend, kind string, _ error) {
	h.saves = append(h.saves, backend+"/"+kind)
}

func TestHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetLookupHooks(h)
	observability.SetStoreHooks(h)
	defer observability.Reset()

	record := entity.NewRecord("NY")
	record.RegistrationNumber = "1"
	reg := &fakeRegistry{summaries: []entity.Summary{{ID: "1"}}, record: record}
	logger, _ := testLogger()
	svc := New(reg, store.NewNullStore(), logger)

	svc.Search(context.Background(), "acme")
	svc.Details(context.Background(), "1")

	if h.searches != 1 || h.details != 1 {
		t.Errorf("hooks: searches=%d details=%d", h.searches, h.details)
	}
	want := []string{"store.NullStore/search", "store.NullStore/record"}
	if len(h.saves) != 2 || h.saves[0] != want[0] || h.saves[1] != want[1] {
		t.Errorf("saves = %v, want %v", h.saves, want)
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://apps.dos.ny.gov/x/1": true,
		"http://localhost/1":          true,
		"5123456":                     false,
		"ftp://x/1":                   false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}
