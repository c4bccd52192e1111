package server

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LeadRecord is a stored lead row
type LeadRecord struct {
	ID          int
	DocumentID  string
	Name        string
	Company     string
	Email       string
	Status      string
	CreatedAt   string
	UpdatedAt   string
	PublishedAt string
}

// Store runs the lead queries. All placeholders use the $N form, which
// both lib/pq and modernc sqlite accept, so one query set serves both
// drivers.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListLeads returns all leads, oldest first, optionally filtered by status
func (s *Store) ListLeads(ctx context.Context, status string) ([]LeadRecord, error) {
	query := `SELECT id, document_id, name, company, email, lead_status, created_at, updated_at, published_at
		FROM leads ORDER BY id`
	args := []interface{}{}
	if status != "" {
		query = `SELECT id, document_id, name, company, email, lead_status, created_at, updated_at, published_at
			FROM leads WHERE lead_status = $1 ORDER BY id`
		args = append(args, status)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []LeadRecord{}
	for rows.Next() {
		var l LeadRecord
		var published sql.NullString
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.Name, &l.Company, &l.Email, &l.Status,
			&l.CreatedAt, &l.UpdatedAt, &published); err != nil {
			return nil, err
		}
		l.PublishedAt = published.String
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// GetLead returns one lead by id
func (s *Store) GetLead(ctx context.Context, id int) (LeadRecord, error) {
	var l LeadRecord
	var published sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT id, document_id, name, company, email, lead_status, created_at, updated_at, published_at
		FROM leads WHERE id = $1`, id).
		Scan(&l.ID, &l.DocumentID, &l.Name, &l.Company, &l.Email, &l.Status,
			&l.CreatedAt, &l.UpdatedAt, &published)
	if err != nil {
		return LeadRecord{}, err
	}
	l.PublishedAt = published.String
	return l, nil
}

// CreateLead inserts a lead, assigning id, document id, and timestamps
func (s *Store) CreateLead(ctx context.Context, name, company, email, status string) (LeadRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	l := LeadRecord{
		DocumentID:  uuid.New().String(),
		Name:        name,
		Company:     company,
		Email:       email,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
		PublishedAt: now,
	}

	err := s.db.QueryRowContext(ctx, `INSERT INTO leads (document_id, name, company, email, lead_status, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		l.DocumentID, l.Name, l.Company, l.Email, l.Status, l.CreatedAt, l.UpdatedAt, l.PublishedAt).
		Scan(&l.ID)
	if err != nil {
		return LeadRecord{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return l, nil
}

// UpdateLead replaces the mutable fields of a lead
func (s *Store) UpdateLead(ctx context.Context, id int, name, company, email, status string) (LeadRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, `UPDATE leads SET name = $1, company = $2, email = $3, lead_status = $4, updated_at = $5
		WHERE id = $6`,
		name, company, email, status, now, id)
	if err != nil {
		return LeadRecord{}, fmt.Errorf("failed to update lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return LeadRecord{}, sql.ErrNoRows
	}
	return s.GetLead(ctx, id)
}

// DeleteLead removes a lead
func (s *Store) DeleteLead(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
