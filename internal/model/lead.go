package model

// Status is the lifecycle state of a lead
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Lead represents a single sales contact
//
// ID is nil for a draft that has not been persisted yet; the backend assigns
// it on creation. Timestamps are RFC3339 strings set by the backend, empty
// when unset (PublishedAt in particular stays empty for unpublished records).
type Lead struct {
	ID          *int   `json:"id,omitempty"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Status      Status `json:"lead_status"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// NewLead creates a draft lead with no ID
func NewLead(name, company, email string, status Status) Lead {
	return Lead{
		Name:    name,
		Company: company,
		Email:   email,
		Status:  status,
	}
}

// IsPersisted returns true once the backend has assigned an ID
func (l *Lead) IsPersisted() bool {
	return l.ID != nil
}
