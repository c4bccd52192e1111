package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/existflow/leadboard/internal/model"
)

// The response envelope mirrors the content API the dashboard was written
// against: entity fields nested under attributes, alongside a top-level id.

type leadAttributes struct {
	DocumentID  string  `json:"documentId"`
	Name        string  `json:"name"`
	Company     string  `json:"company"`
	Email       string  `json:"email"`
	Status      string  `json:"lead_status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	PublishedAt *string `json:"publishedAt"`
}

type leadData struct {
	ID         int            `json:"id"`
	Attributes leadAttributes `json:"attributes"`
}

type listResponse struct {
	Data []leadData             `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

type singleResponse struct {
	Data leadData               `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

type writeRequest struct {
	Data struct {
		Name    string `json:"name"`
		Company string `json:"company"`
		Email   string `json:"email"`
		Status  string `json:"lead_status"`
	} `json:"data"`
}

func envelope(l LeadRecord) leadData {
	attrs := leadAttributes{
		DocumentID: l.DocumentID,
		Name:       l.Name,
		Company:    l.Company,
		Email:      l.Email,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
	if l.PublishedAt != "" {
		attrs.PublishedAt = &l.PublishedAt
	}
	return leadData{ID: l.ID, Attributes: attrs}
}

// statusFromFilters pulls lead_status.$eq out of the filters query param
func statusFromFilters(raw string) string {
	if raw == "" {
		return ""
	}
	var filters struct {
		Status struct {
			Eq string `json:"$eq"`
		} `json:"lead_status"`
	}
	if err := json.Unmarshal([]byte(raw), &filters); err != nil {
		return ""
	}
	return filters.Status.Eq
}

func (s *Server) handleListLeads(c echo.Context) error {
	status := statusFromFilters(c.QueryParam("filters"))

	leads, err := s.store.ListLeads(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	data := make([]leadData, 0, len(leads))
	for _, l := range leads {
		data = append(data, envelope(l))
	}

	return c.JSON(http.StatusOK, listResponse{
		Data: data,
		Meta: map[string]interface{}{
			"pagination": map[string]int{
				"page":      1,
				"pageSize":  len(data),
				"pageCount": 1,
				"total":     len(data),
			},
		},
	})
}

func (s *Server) handleGetLead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	lead, err := s.store.GetLead(c.Request().Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "lead not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, singleResponse{Data: envelope(lead), Meta: map[string]interface{}{}})
}

func (s *Server) handleCreateLead(c echo.Context) error {
	var req writeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if msg := validateWrite(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	lead, err := s.store.CreateLead(c.Request().Context(),
		req.Data.Name, req.Data.Company, req.Data.Email, req.Data.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, singleResponse{Data: envelope(lead), Meta: map[string]interface{}{}})
}

func (s *Server) handleUpdateLead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var req writeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if msg := validateWrite(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	lead, err := s.store.UpdateLead(c.Request().Context(), id,
		req.Data.Name, req.Data.Company, req.Data.Email, req.Data.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "lead not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, singleResponse{Data: envelope(lead), Meta: map[string]interface{}{}})
}

func (s *Server) handleDeleteLead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	err = s.store.DeleteLead(c.Request().Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "lead not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.NoContent(http.StatusNoContent)
}

func validateWrite(req *writeRequest) string {
	if req.Data.Name == "" || req.Data.Company == "" || req.Data.Email == "" {
		return "name, company, and email required"
	}
	if !model.Status(req.Data.Status).IsValid() {
		return "lead_status must be active or inactive"
	}
	return ""
}
