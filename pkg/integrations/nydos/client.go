package nydos

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/bizreg/pkg/entity"
	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	"github.com/matzehuels/bizreg/pkg/integrations"
)

// DefaultBaseURL is the Public Inquiry API root.
const DefaultBaseURL = "https://apps.dos.ny.gov/PublicInquiryWeb/api/PublicInquiry"

const (
	searchPath = "GetComplexSearchMatchingEntities"
	detailPath = "GetEntityRecordByID"

	// Search results are limited to a single fixed page.
	listStartRecord = 1
	listEndRecord   = 50
)

var (
	// ErrRequestStatus is returned when the registry answers but reports a
	// requestStatus other than "Success".
	ErrRequestStatus = errors.New("registry request not successful")

	// ErrNoRows is returned by ParseAgentRows when the payload has no rows.
	ErrNoRows = errors.New("no rows in payload")
)

// Config holds the client settings.
type Config struct {
	State     string // Jurisdiction label stamped on every normalized record (e.g., "NY")
	BaseURL   string // API root; DefaultBaseURL if empty
	UserAgent string // Optional User-Agent header
}

// SearchOptions narrows a search. The zero value searches entity names that
// begin with the query, across all statuses and the four default entity types.
type SearchOptions struct {
	Expression string   // BeginsWith (default), Contains, ExactMatch
	Status     string   // AllStatuses (default), Active, Inactive
	Types      []string // DefaultEntityTypes if empty
}

var (
	validExpressions = []string{ExpressionBeginsWith, ExpressionContains, ExpressionExactMatch}
	validStatuses    = []string{StatusAll, StatusActive, StatusInactive}
)

// Validate reports whether every option value is one the API accepts.
func (o SearchOptions) Validate() error {
	if o.Expression != "" && !slices.Contains(validExpressions, o.Expression) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown search expression %q", o.Expression)
	}
	if o.Status != "" && !slices.Contains(validStatuses, o.Status) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown entity status %q", o.Status)
	}
	for _, typ := range o.Types {
		if !slices.Contains(DefaultEntityTypes, typ) {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown entity type %q", typ)
		}
	}
	return nil
}

// Client provides access to the NY DOS Public Inquiry API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
	state   string
}

// NewClient creates a Public Inquiry client.
// Options are passed through to [integrations.NewClient].
func NewClient(cfg Config, opts ...integrations.Option) *Client {
	var headers map[string]string
	if cfg.UserAgent != "" {
		headers = map[string]string{"User-Agent": cfg.UserAgent}
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(headers, opts...),
		baseURL: base,
		state:   cfg.State,
	}
}

// State returns the jurisdiction label stamped on normalized records.
func (c *Client) State() string { return c.state }

// EntityURL returns the detail URL for a DOS ID. FetchEntityByURL accepts it.
func (c *Client) EntityURL(dosID string) string {
	return integrations.JoinURL(c.baseURL, detailPath, dosID)
}

// Search finds entities whose names match query.
//
// Returns:
//   - one Summary per entity in the result list (an empty slice if none)
//   - ErrRequestStatus if the registry did not report success
//   - [integrations.ErrNotFound], [integrations.ErrNetwork], [integrations.ErrServer]
//     for HTTP failures
//   - a coded INVALID_* error for bad input
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]entity.Summary, error) {
	if err := apperrors.ValidateQuery(query); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var data searchResponse
	if err := c.PostJSON(ctx, integrations.JoinURL(c.baseURL, searchPath), newSearchRequest(query, opts), &data); err != nil {
		return nil, err
	}
	return c.parseSearch(&data)
}

// FetchEntity retrieves and normalizes the detail record for a DOS ID.
func (c *Client) FetchEntity(ctx context.Context, dosID string) (*entity.Record, error) {
	if err := apperrors.ValidateEntityID(dosID); err != nil {
		return nil, err
	}
	return c.fetch(ctx, integrations.JoinURL(c.baseURL, detailPath), dosID)
}

// FetchEntityByURL retrieves the detail record addressed by a Summary URL.
// The last path segment is the DOS ID; the rest of the URL is the endpoint.
func (c *Client) FetchEntityByURL(ctx context.Context, url string) (*entity.Record, error) {
	if err := apperrors.ValidateURL(url); err != nil {
		return nil, err
	}
	endpoint, dosID := integrations.SplitEntityURL(url)
	if err := apperrors.ValidateEntityID(dosID); err != nil {
		return nil, err
	}
	return c.fetch(ctx, endpoint, dosID)
}

func (c *Client) fetch(ctx context.Context, endpoint, dosID string) (*entity.Record, error) {
	var data detailResponse
	if err := c.PostJSON(ctx, endpoint, detailRequest{SearchID: dosID}, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: dos id %s", err, dosID)
		}
		return nil, err
	}
	if data.RequestStatus != "" && data.RequestStatus != requestStatusSuccess {
		return nil, fmt.Errorf("%w: %s", ErrRequestStatus, data.RequestStatus)
	}
	return c.parseDetails(&data), nil
}

func newSearchRequest(query string, opts SearchOptions) searchRequest {
	req := searchRequest{
		SearchValue:               query,
		SearchByTypeIndicator:     SearchByEntityName,
		SearchExpressionIndicator: ExpressionBeginsWith,
		EntityStatusIndicator:     StatusAll,
		EntityTypeIndicator:       DefaultEntityTypes,
		ListPaginationInfo: pagination{
			ListStartRecord: listStartRecord,
			ListEndRecord:   listEndRecord,
		},
	}
	if opts.Expression != "" {
		req.SearchExpressionIndicator = opts.Expression
	}
	if opts.Status != "" {
		req.EntityStatusIndicator = opts.Status
	}
	if len(opts.Types) > 0 {
		req.EntityTypeIndicator = opts.Types
	}
	return req
}
