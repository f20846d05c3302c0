package entity

// Summary is one normalized row of a registry search result.
type Summary struct {
	State  string `json:"state" bson:"state"`   // Registry jurisdiction (e.g., "NY")
	Name   string `json:"name" bson:"name"`     // Registered entity name
	Status string `json:"status" bson:"status"` // Registry status (e.g., "Active")
	ID     string `json:"id" bson:"id"`         // DOS ID
	URL    string `json:"url" bson:"url"`       // Detail endpoint for this entity
}

// IsZero reports whether s carries no data.
func (s Summary) IsZero() bool { return s == Summary{} }

// Record is the normalized detail view of a single registered entity.
//
// Zero values: string fields are empty, nullable fields are nil.
// DocumentImages is always non-nil once built by [NewRecord] so it marshals as [].
type Record struct {
	State              string   `json:"state" bson:"state"`
	Name               string   `json:"name" bson:"name"`
	Status             string   `json:"status" bson:"status"`
	RegistrationNumber string   `json:"registration_number" bson:"registration_number"` // DOS ID
	DateRegistered     *string  `json:"date_registered" bson:"date_registered"`         // YYYY-MM-DD or null
	InactiveDate       *string  `json:"inactive_date" bson:"inactive_date"`             // YYYY-MM-DD or null
	EntityType         string   `json:"entity_type" bson:"entity_type"`
	PrincipalAddress   string   `json:"principal_address" bson:"principal_address"`
	CEOName            string   `json:"ceo_name" bson:"ceo_name"`
	CEOAddress         string   `json:"ceo_address" bson:"ceo_address"`
	SOPName            string   `json:"sop_name" bson:"sop_name"` // Service of Process recipient
	SOPAddress         string   `json:"sop_address" bson:"sop_address"`
	AgentName          *string  `json:"agent_name" bson:"agent_name"`       // Registered agent, null if none
	AgentAddress       *string  `json:"agent_address" bson:"agent_address"` // Registered agent address, null if none
	DocumentImages     []string `json:"document_images" bson:"document_images"`
}

// NewRecord returns a Record for the given state with DocumentImages initialized.
func NewRecord(state string) *Record {
	return &Record{State: state, DocumentImages: []string{}}
}

// IsZero reports whether r carries no entity data. The State field alone
// does not make a record non-empty.
func (r *Record) IsZero() bool {
	if r == nil {
		return true
	}
	return r.Name == "" && r.RegistrationNumber == "" && r.Status == "" && r.EntityType == ""
}

// AgentRow is the compact view built from a tabular "rows" payload.
type AgentRow struct {
	RecordNum string `json:"record_num"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Agent     string `json:"agent"`
}

// Address is a postal address as returned by the registry.
type Address struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
}
