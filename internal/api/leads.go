package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/existflow/leadboard/internal/model"
)

// Service exposes the lead operations of the backend content API
type Service struct {
	client *Client
}

// NewService creates a lead service on top of the transport client
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// listEnvelope matches the content API's collection response. Older
// deployments return a bare array instead, and a few return a single
// object, so decoding falls back through all three forms.
type listEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// createBody wraps lead fields the way the content API expects writes
type createBody struct {
	Data leadPayload `json:"data"`
}

type leadPayload struct {
	Name    string       `json:"name"`
	Company string       `json:"company"`
	Email   string       `json:"email"`
	Status  model.Status `json:"lead_status"`
}

// GetAll fetches every lead, optionally filtered by status on the server.
// Order is whatever the backend returns; the view layer owns sorting.
func (s *Service) GetAll(ctx context.Context, status model.Status) ([]model.Lead, error) {
	query := url.Values{}
	if status != "" {
		filters, err := json.Marshal(map[string]interface{}{
			"lead_status": map[string]string{"$eq": string(status)},
		})
		if err != nil {
			return nil, fmt.Errorf("encoding filters: %w", err)
		}
		query.Set("filters", string(filters))
	}

	body, err := s.client.Get(ctx, "/leads", query)
	if err != nil {
		return nil, err
	}

	raws, err := splitCollection(body)
	if err != nil {
		return nil, err
	}
	return normalizeLeads(raws)
}

// GetByID fetches a single lead
func (s *Service) GetByID(ctx context.Context, id int) (model.Lead, error) {
	body, err := s.client.Get(ctx, fmt.Sprintf("/leads/%d", id), nil)
	if err != nil {
		return model.Lead{}, err
	}
	return normalizeLead(unwrapData(body))
}

// Create posts a draft lead and returns the persisted record
func (s *Service) Create(ctx context.Context, lead model.Lead) (model.Lead, error) {
	body, err := s.client.Post(ctx, "/leads", wrapLead(lead))
	if err != nil {
		return model.Lead{}, err
	}
	return normalizeLead(unwrapData(body))
}

// Update replaces the mutable fields of an existing lead
func (s *Service) Update(ctx context.Context, id int, lead model.Lead) (model.Lead, error) {
	body, err := s.client.Put(ctx, fmt.Sprintf("/leads/%d", id), wrapLead(lead))
	if err != nil {
		return model.Lead{}, err
	}
	return normalizeLead(unwrapData(body))
}

// Delete removes a lead
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/leads/%d", id))
}

func wrapLead(lead model.Lead) createBody {
	return createBody{Data: leadPayload{
		Name:    lead.Name,
		Company: lead.Company,
		Email:   lead.Email,
		Status:  lead.Status,
	}}
}

// splitCollection turns a collection response into individual raw records,
// accepting {data:[...]}, {data:{...}}, a bare array, or a bare object.
func splitCollection(body json.RawMessage) ([]json.RawMessage, error) {
	if isJSONNull(body) {
		return nil, nil
	}

	payload := body
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		payload = env.Data
	}
	if isJSONNull(payload) {
		return nil, nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(payload), []byte("[")) {
		var raws []json.RawMessage
		if err := json.Unmarshal(payload, &raws); err != nil {
			return nil, fmt.Errorf("decoding lead list: %w", err)
		}
		return raws, nil
	}
	return []json.RawMessage{payload}, nil
}

// unwrapData strips a {data:{...}} envelope from a single-record response,
// passing already-flat responses through untouched.
func unwrapData(body json.RawMessage) json.RawMessage {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && !isJSONNull(env.Data) {
		return env.Data
	}
	return body
}
