package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/bizreg/pkg/entity"
	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	"github.com/matzehuels/bizreg/pkg/observability"
)

// registryStub serves canned Public Inquiry responses.
func registryStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/GetComplexSearchMatchingEntities"):
			var req map[string]any
			json.NewDecoder(r.Body).Decode(&req)
			if req["searchValue"] == "broken" {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			io.WriteString(w, `{"requestStatus":"Success","entitySearchResultList":[
				{"entityName":"ACME WIDGETS LLC","entityStatus":"Active","dosID":"5123456"}]}`)
		case strings.HasSuffix(r.URL.Path, "/GetEntityRecordByID"):
			io.WriteString(w, `{"requestStatus":"Success","entityGeneralInfo":{
				"entityName":"ACME WIDGETS LLC","entityStatus":"Active","dosID":"5123456",
				"dateOfInitialDosFiling":"2017-03-14T00:00:00","entityType":"DOMESTIC LIMITED LIABILITY COMPANY"}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupEnv(t *testing.T, baseURL string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("STATE", "")
	t.Setenv("BIZREG_STORE", "")
	t.Setenv("BIZREG_BASE_URL", baseURL)
	t.Cleanup(observability.Reset)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), logs.String(), err
}

func TestSearchJSON(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	out, _, err := execute(t, "search", "acme", "widgets", "--json")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	var got []entity.Summary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results", len(got))
	}
	want := entity.Summary{
		State:  "NY",
		Name:   "ACME WIDGETS LLC",
		Status: "Active",
		ID:     "5123456",
		URL:    srv.URL + "/GetEntityRecordByID/5123456",
	}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
}

func TestSearchStateFlag(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	out, _, err := execute(t, "--state", "nj", "search", "acme", "--json")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if !strings.Contains(out, `"state": "NJ"`) {
		t.Errorf("state override not applied:\n%s", out)
	}
}

func TestSearchFailureIsEmpty(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	out, logs, err := execute(t, "search", "broken", "--json")
	if err != nil {
		t.Fatalf("lookup failures should not fail the command: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("output = %q, want []", out)
	}
	if !strings.Contains(logs, "Error fetching data for query") {
		t.Errorf("failure should be logged, got %q", logs)
	}
}

func TestSearchBadFlags(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	for _, args := range [][]string{
		{"search", "acme", "--match", "fuzzy"},
		{"search", "acme", "--status", "dormant"},
		{"search", "acme", "--type", "trust"},
		{"search", "   "},
	} {
		_, _, err := execute(t, args...)
		if !apperrors.IsValidation(err) {
			t.Errorf("%v: expected validation error, got %v", args, err)
		}
	}
}

func TestSearchOutputFile(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)
	path := filepath.Join(t.TempDir(), "acme.json")

	if _, _, err := execute(t, "search", "acme", "--json", "-o", path); err != nil {
		t.Fatalf("search error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if !strings.Contains(string(data), "5123456") {
		t.Errorf("output file missing result:\n%s", data)
	}

	out, _, err := execute(t, "entity", "--from", path, "--json")
	if err != nil {
		t.Fatalf("entity --from error: %v", err)
	}
	if !strings.Contains(out, `"registration_number": "5123456"`) {
		t.Errorf("entity --from output:\n%s", out)
	}
}

func TestEntityJSON(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	out, _, err := execute(t, "entity", "5123456", "--json")
	if err != nil {
		t.Fatalf("entity error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not a JSON object: %v\n%s", err, out)
	}
	if got["date_registered"] != "2017-03-14" {
		t.Errorf("date_registered = %v", got["date_registered"])
	}
	if v, ok := got["agent_name"]; !ok || v != nil {
		t.Errorf("agent_name = %v (present=%v), want null", v, ok)
	}
	if imgs, ok := got["document_images"].([]any); !ok || len(imgs) != 0 {
		t.Errorf("document_images = %v", got["document_images"])
	}
}

func TestEntityFailureIsEmptyObject(t *testing.T) {
	setupEnv(t, "http://127.0.0.1:1")

	out, _, err := execute(t, "entity", "5123456", "--json")
	if err != nil {
		t.Fatalf("entity error: %v", err)
	}
	if strings.TrimSpace(out) != "{}" {
		t.Errorf("output = %q, want {}", out)
	}
}

func TestEntityRequiresRef(t *testing.T) {
	setupEnv(t, "http://127.0.0.1:1")
	if _, _, err := execute(t, "entity"); err == nil {
		t.Error("expected error without refs")
	}
}

func TestStoredRoundTrip(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	if _, _, err := execute(t, "--store", "file", "entity", "5123456", "--json"); err != nil {
		t.Fatalf("entity error: %v", err)
	}

	out, _, err := execute(t, "--store", "file", "stored", "5123456", "--json")
	if err != nil {
		t.Fatalf("stored error: %v", err)
	}
	if !strings.Contains(out, `"name": "ACME WIDGETS LLC"`) {
		t.Errorf("stored output:\n%s", out)
	}

	_, _, err = execute(t, "--store", "file", "stored", "999")
	if !apperrors.Is(err, apperrors.ErrCodeEntityNotFound) {
		t.Errorf("expected ENTITY_NOT_FOUND, got %v", err)
	}
}

func TestStoredSQLite(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	if _, _, err := execute(t, "--store", "sqlite", "entity", "5123456", "--json"); err != nil {
		t.Fatalf("entity error: %v", err)
	}
	out, _, err := execute(t, "--store", "sqlite", "stored", "5123456", "--json")
	if err != nil {
		t.Fatalf("stored error: %v", err)
	}
	if !strings.Contains(out, "5123456") {
		t.Errorf("stored output:\n%s", out)
	}
}

func TestStoredSearch(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	if _, _, err := execute(t, "--store", "sqlite", "search", "acme", "--json"); err != nil {
		t.Fatalf("search error: %v", err)
	}

	out, _, err := execute(t, "--store", "sqlite", "stored", "--search", "acme", "--json")
	if err != nil {
		t.Fatalf("stored --search error: %v", err)
	}
	var run struct {
		Query   string           `json:"query"`
		Results []entity.Summary `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if run.Query != "acme" || len(run.Results) != 1 || run.Results[0].ID != "5123456" {
		t.Errorf("unexpected run %+v", run)
	}

	_, _, err = execute(t, "--store", "sqlite", "stored", "--search", "other")
	if !apperrors.Is(err, apperrors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}

	for _, args := range [][]string{
		{"stored"},
		{"stored", "5123456", "--search", "acme"},
	} {
		if _, _, err := execute(t, args...); !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
			t.Errorf("%v: expected INVALID_INPUT, got %v", args, err)
		}
	}
}

func TestAgentRows(t *testing.T) {
	setupEnv(t, "https://example.com/api")

	path := filepath.Join(t.TempDir(), "rows.json")
	payload := `{"rows": {
		"5123456": {"RECORD_NUM": 7, "TITLE": ["ACME WIDGETS LLC"], "AGENT": "CT CORPORATION SYSTEM"},
		"987654": {"RECORD_NUM": "8", "TITLE": ["OTHER"], "AGENT": ""}
	}}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "agent-rows", path, "--json")
	if err != nil {
		t.Fatalf("agent-rows error: %v", err)
	}
	var row entity.AgentRow
	if err := json.Unmarshal([]byte(out), &row); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := entity.AgentRow{RecordNum: "7", ID: "5123456", Name: "ACME WIDGETS LLC", Agent: "CT CORPORATION SYSTEM"}
	if row != want {
		t.Errorf("row = %+v, want %+v", row, want)
	}
}

func TestAgentRowsEmptyIsEmptyObject(t *testing.T) {
	setupEnv(t, "https://example.com/api")

	var stdout, logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs([]string{"agent-rows", "-", "--json"})
	root.SetIn(strings.NewReader(`{"rows": {}}`))
	root.SetOut(&stdout)
	root.SetErr(&logs)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("agent-rows error: %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "{}" {
		t.Errorf("output = %q, want {}", stdout.String())
	}
	if !strings.Contains(logs.String(), "Error parsing agent rows") {
		t.Errorf("failure should be logged, got %q", logs.String())
	}

	if _, _, err := execute(t, "agent-rows", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestConfigCommands(t *testing.T) {
	setupEnv(t, "https://example.com/api")

	out, _, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), filepath.Join("bizreg", "config.toml")) {
		t.Errorf("config path = %q", out)
	}

	out, _, err = execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out, `base_url = "https://example.com/api"`) {
		t.Errorf("config show:\n%s", out)
	}
}

func TestInvalidStoreFlag(t *testing.T) {
	setupEnv(t, "https://example.com/api")
	_, _, err := execute(t, "--store", "postgres", "search", "acme")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestVerboseLogsRawBody(t *testing.T) {
	srv := registryStub(t)
	setupEnv(t, srv.URL)

	_, logs, err := execute(t, "-v", "search", "acme", "--json")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if !strings.Contains(logs, "entitySearchResultList") {
		t.Errorf("verbose mode should log the raw response, got:\n%s", logs)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.HasPrefix(out, "bizreg version ") {
		t.Errorf("version output = %q", out)
	}
}

func TestToSearchOptions(t *testing.T) {
	o := searchOpts{match: "Contains", status: "ACTIVE", types: []string{"llc", "corp"}}
	got, err := o.toSearchOptions()
	if err != nil {
		t.Fatalf("toSearchOptions error: %v", err)
	}
	if got.Expression != "Contains" || got.Status != "Active" {
		t.Errorf("got %+v", got)
	}
	if len(got.Types) != 2 || got.Types[0] != "LimitedLiabilityCompany" || got.Types[1] != "Corporation" {
		t.Errorf("Types = %v", got.Types)
	}
}
