package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/leadboard/internal/model"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(NewClient(srv.URL, ""))
}

func TestGetAllEnvelopedList(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leads", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":1,"attributes":{"name":"Ann","company":"Zeta","email":"ann@zeta.io","lead_status":"active"}},
			{"id":2,"attributes":{"name":"Bob","company":"Acme","email":"bob@acme.com","lead_status":"inactive"}}
		],"meta":{}}`))
	})

	leads, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Ann", leads[0].Name)
	assert.Equal(t, "Bob", leads[1].Name)
}

func TestGetAllBareArray(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"name":"Ann","company":"Zeta","email":"ann@zeta.io","lead_status":"active"}
		]`))
	})

	leads, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Ann", leads[0].Name)
}

func TestGetAllSingleObject(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":1,"attributes":{"name":"Ann","company":"Zeta","email":"ann@zeta.io","lead_status":"active"}},"meta":{}}`))
	})

	leads, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, leads, 1)
}

func TestGetAllNullSlots(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			null,
			{"id":1,"name":"Ann","company":"Zeta","email":"ann@zeta.io","lead_status":"active"},
			null
		],"meta":{}}`))
	})

	leads, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, leads, 1)
}

func TestGetAllMalformedRecordAbortsFetch(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":1,"name":"Ann","company":"Zeta","email":"ann@zeta.io","lead_status":"active"},
			{"id":2}
		],"meta":{}}`))
	})

	_, err := svc.GetAll(context.Background(), "")
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
}

func TestGetAllStatusFilterParam(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		filters := r.URL.Query().Get("filters")
		assert.JSONEq(t, `{"lead_status":{"$eq":"active"}}`, filters)
		w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	leads, err := svc.GetAll(context.Background(), model.StatusActive)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestGetAllEmptyList(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	leads, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, leads)
	assert.Empty(t, leads)
}

func TestCreateWrapsBody(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/leads", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, map[string]string{
			"name":        "Ann",
			"company":     "Zeta",
			"email":       "ann@zeta.io",
			"lead_status": "active",
		}, req.Data)

		w.Write([]byte(`{"data":{"id":10,"attributes":{"name":"Ann","company":"Zeta","email":"ann@zeta.io","lead_status":"active","createdAt":"2024-01-01T00:00:00Z"}},"meta":{}}`))
	})

	created, err := svc.Create(context.Background(), model.NewLead("Ann", "Zeta", "ann@zeta.io", model.StatusActive))
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, 10, *created.ID)
	assert.Equal(t, "2024-01-01T00:00:00Z", created.CreatedAt)
}

func TestGetByID(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leads/3", r.URL.Path)
		w.Write([]byte(`{"data":{"id":3,"attributes":{"name":"Ann","company":"Zeta","email":"ann@zeta.io","lead_status":"active"}},"meta":{}}`))
	})

	lead, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Ann", lead.Name)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/leads/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.Delete(context.Background(), 3))
}

func TestUpdate(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/leads/3", r.URL.Path)
		w.Write([]byte(`{"data":{"id":3,"attributes":{"name":"Ann B","company":"Zeta","email":"ann@zeta.io","lead_status":"inactive"}},"meta":{}}`))
	})

	lead, err := svc.Update(context.Background(), 3, model.NewLead("Ann B", "Zeta", "ann@zeta.io", model.StatusInactive))
	require.NoError(t, err)
	assert.Equal(t, "Ann B", lead.Name)
	assert.Equal(t, model.StatusInactive, lead.Status)
}
