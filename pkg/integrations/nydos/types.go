package nydos

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Search indicator values accepted by the Public Inquiry API.
const (
	SearchByEntityName = "EntityName"

	ExpressionBeginsWith = "BeginsWith"
	ExpressionContains   = "Contains"
	ExpressionExactMatch = "ExactMatch"

	StatusAll      = "AllStatuses"
	StatusActive   = "Active"
	StatusInactive = "Inactive"

	TypeCorporation                 = "Corporation"
	TypeLimitedLiabilityCompany     = "LimitedLiabilityCompany"
	TypeLimitedPartnership          = "LimitedPartnership"
	TypeLimitedLiabilityPartnership = "LimitedLiabilityPartnership"
)

// requestStatusSuccess is the only requestStatus that carries results.
const requestStatusSuccess = "Success"

// DefaultEntityTypes is the entity type filter sent when none is given.
var DefaultEntityTypes = []string{
	TypeCorporation,
	TypeLimitedLiabilityCompany,
	TypeLimitedPartnership,
	TypeLimitedLiabilityPartnership,
}

// searchRequest is the wire payload for GetComplexSearchMatchingEntities.
type searchRequest struct {
	SearchValue               string     `json:"searchValue"`
	SearchByTypeIndicator     string     `json:"searchByTypeIndicator"`
	SearchExpressionIndicator string     `json:"searchExpressionIndicator"`
	EntityStatusIndicator     string     `json:"entityStatusIndicator"`
	EntityTypeIndicator       []string   `json:"entityTypeIndicator"`
	ListPaginationInfo        pagination `json:"listPaginationInfo"`
}

type pagination struct {
	ListStartRecord int `json:"listStartRecord"`
	ListEndRecord   int `json:"listEndRecord"`
}

// detailRequest is the wire payload for GetEntityRecordByID.
type detailRequest struct {
	SearchID string `json:"SearchID"`
}

type searchResponse struct {
	RequestStatus          string         `json:"requestStatus"`
	EntitySearchResultList []searchEntity `json:"entitySearchResultList"`
}

type searchEntity struct {
	EntityName   text `json:"entityName"`
	EntityStatus text `json:"entityStatus"`
	DosID        text `json:"dosID"`
}

type detailResponse struct {
	RequestStatus     string      `json:"requestStatus"`
	EntityGeneralInfo generalInfo `json:"entityGeneralInfo"`
	CEO               party       `json:"ceo"`
	POExecAddress     party       `json:"poExecAddress"`
	SOPAddress        party       `json:"sopAddress"`
	RegisteredAgent   party       `json:"registeredAgent"`
}

type generalInfo struct {
	EntityName             text `json:"entityName"`
	EntityStatus           text `json:"entityStatus"`
	DosID                  text `json:"dosID"`
	DateOfInitialDosFiling text `json:"dateOfInitialDosFiling"`
	InactiveDate           text `json:"inactiveDate"`
	EntityType             text `json:"entityType"`
}

type party struct {
	Name    text    `json:"name"`
	Address address `json:"address"`
}

type address struct {
	StreetAddress text `json:"streetAddress"`
	City          text `json:"city"`
	State         text `json:"state"`
	ZipCode       text `json:"zipCode"`
	Country       text `json:"country"`
}

// text decodes a JSON scalar of any kind into its string form.
// The registry is inconsistent about identifiers and zip codes: the same
// field arrives as a string, a number, or null depending on the record.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	case bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		*t = text(b)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = text(n.String())
	default:
		return fmt.Errorf("nydos: expected scalar, got %.20s", b)
	}
	return nil
}

func (t text) String() string { return string(t) }
