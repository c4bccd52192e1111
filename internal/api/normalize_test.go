package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/leadboard/internal/model"
)

func TestNormalizeLeadFlatShape(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 7,
		"name": "Ann Harper",
		"company": "Zeta",
		"email": "ann@zeta.io",
		"lead_status": "active",
		"createdAt": "2024-01-02T10:00:00Z",
		"updatedAt": "2024-01-03T10:00:00Z",
		"publishedAt": "2024-01-02T10:00:00Z"
	}`)

	lead, err := normalizeLead(raw)
	require.NoError(t, err)

	require.NotNil(t, lead.ID)
	assert.Equal(t, 7, *lead.ID)
	assert.Equal(t, "Ann Harper", lead.Name)
	assert.Equal(t, "Zeta", lead.Company)
	assert.Equal(t, "ann@zeta.io", lead.Email)
	assert.Equal(t, model.StatusActive, lead.Status)
	assert.Equal(t, "2024-01-02T10:00:00Z", lead.CreatedAt)
	assert.Equal(t, "2024-01-03T10:00:00Z", lead.UpdatedAt)
	assert.Equal(t, "2024-01-02T10:00:00Z", lead.PublishedAt)
}

func TestNormalizeLeadEnvelopedShape(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 7,
		"attributes": {
			"name": "Ann Harper",
			"company": "Zeta",
			"email": "ann@zeta.io",
			"lead_status": "active",
			"createdAt": "2024-01-02T10:00:00Z",
			"updatedAt": "2024-01-03T10:00:00Z",
			"publishedAt": "2024-01-02T10:00:00Z"
		}
	}`)

	lead, err := normalizeLead(raw)
	require.NoError(t, err)

	flat, err := normalizeLead(json.RawMessage(`{
		"id": 7,
		"name": "Ann Harper",
		"company": "Zeta",
		"email": "ann@zeta.io",
		"lead_status": "active",
		"createdAt": "2024-01-02T10:00:00Z",
		"updatedAt": "2024-01-03T10:00:00Z",
		"publishedAt": "2024-01-02T10:00:00Z"
	}`))
	require.NoError(t, err)

	// Both wire shapes produce identical logical content
	assert.Equal(t, flat, lead)
}

func TestNormalizeLeadUnrecognizedShape(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"id only", `{"id": 3}`},
		{"empty name and no attributes", `{"id": 3, "name": ""}`},
		{"not an object", `42`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalizeLead(json.RawMessage(tc.raw))
			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestNormalizeLeadPublishedAtFalsy(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"null", `{"id":1,"name":"A","company":"B","email":"a@b.c","lead_status":"active","publishedAt":null}`, ""},
		{"empty string", `{"id":1,"name":"A","company":"B","email":"a@b.c","lead_status":"active","publishedAt":""}`, ""},
		{"absent", `{"id":1,"name":"A","company":"B","email":"a@b.c","lead_status":"active"}`, ""},
		{"set", `{"id":1,"name":"A","company":"B","email":"a@b.c","lead_status":"active","publishedAt":"2024-05-01T00:00:00Z"}`, "2024-05-01T00:00:00Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lead, err := normalizeLead(json.RawMessage(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, lead.PublishedAt)
		})
	}

	// Same rule in the enveloped path
	lead, err := normalizeLead(json.RawMessage(`{"id":1,"attributes":{"name":"A","company":"B","email":"a@b.c","lead_status":"active","publishedAt":null}}`))
	require.NoError(t, err)
	assert.Equal(t, "", lead.PublishedAt)
}

func TestNormalizeLeadDraftHasNoID(t *testing.T) {
	lead, err := normalizeLead(json.RawMessage(`{"name":"A","company":"B","email":"a@b.c","lead_status":"inactive"}`))
	require.NoError(t, err)
	assert.Nil(t, lead.ID)
}

func TestNormalizeLeadsDropsNullEntries(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"id":1,"name":"A","company":"B","email":"a@b.c","lead_status":"active"}`),
		json.RawMessage(`null`),
		nil,
		json.RawMessage(`{"id":2,"attributes":{"name":"C","company":"D","email":"c@d.e","lead_status":"inactive"}}`),
	}

	leads, err := normalizeLeads(raws)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "A", leads[0].Name)
	assert.Equal(t, "C", leads[1].Name)
}

func TestNormalizeLeadsFailsWholeBatch(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"id":1,"name":"A","company":"B","email":"a@b.c","lead_status":"active"}`),
		json.RawMessage(`{"id":2}`),
	}

	_, err := normalizeLeads(raws)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
}

func TestNormalizeLeadsEmptyIsNotNil(t *testing.T) {
	leads, err := normalizeLeads(nil)
	require.NoError(t, err)
	assert.NotNil(t, leads)
	assert.Empty(t, leads)
}
