package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/existflow/leadboard/internal/logger"
	"github.com/existflow/leadboard/internal/model"
)

// recordShape classifies a raw wire record before extraction
type recordShape int

const (
	shapeUnrecognized recordShape = iota
	shapeFlat                     // fields directly on the object
	shapeEnveloped                // id + nested attributes object
)

// leadFields is the field set shared by both wire shapes
type leadFields struct {
	Name        string       `json:"name"`
	Company     string       `json:"company"`
	Email       string       `json:"email"`
	Status      model.Status `json:"lead_status"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
	PublishedAt *string      `json:"publishedAt"`
}

// rawLead is the superset of both wire shapes; unknown fields are ignored
type rawLead struct {
	ID *int `json:"id"`
	leadFields
	Attributes *leadFields `json:"attributes"`
}

func classify(r *rawLead) recordShape {
	if r.Attributes == nil && r.Name != "" {
		return shapeFlat
	}
	if r.Attributes != nil {
		return shapeEnveloped
	}
	return shapeUnrecognized
}

// normalizeLead converts one raw wire record into the canonical Lead.
// Both shapes produce identical logical content; a record matching neither
// shape fails with *MalformedRecordError.
func normalizeLead(raw json.RawMessage) (model.Lead, error) {
	var r rawLead
	if err := json.Unmarshal(raw, &r); err != nil {
		logger.Error("Unexpected lead format", logger.F("raw", string(raw)), logger.F("error", err))
		return model.Lead{}, &MalformedRecordError{Raw: raw}
	}

	fields := &r.leadFields
	switch classify(&r) {
	case shapeFlat:
	case shapeEnveloped:
		fields = r.Attributes
	default:
		logger.Error("Unexpected lead format", logger.F("raw", string(raw)))
		return model.Lead{}, &MalformedRecordError{Raw: raw}
	}

	lead := model.Lead{
		ID:        r.ID,
		Name:      fields.Name,
		Company:   fields.Company,
		Email:     fields.Email,
		Status:    fields.Status,
		CreatedAt: fields.CreatedAt,
		UpdatedAt: fields.UpdatedAt,
	}
	// null and "" both collapse to unset
	if fields.PublishedAt != nil {
		lead.PublishedAt = *fields.PublishedAt
	}
	return lead, nil
}

// normalizeLeads converts a collection. The backend may return sparse slots,
// so null entries are dropped before normalization; after that every entry
// must normalize or the whole batch fails. Row-skipping would corrupt list
// counts, so there are no partial results.
func normalizeLeads(raws []json.RawMessage) ([]model.Lead, error) {
	leads := make([]model.Lead, 0, len(raws))
	for _, raw := range raws {
		if isJSONNull(raw) {
			continue
		}
		lead, err := normalizeLead(raw)
		if err != nil {
			return nil, fmt.Errorf("normalizing lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
