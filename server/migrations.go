package server

import "fmt"

// migrate runs the migration set for the active driver. The two dialects
// differ only in the id column.
func (s *Server) migrate(driver string) error {
	migrations := []string{migrationCreateLeadsSQLite}
	if driver == "postgres" {
		migrations = []string{migrationCreateLeadsPostgres}
	}

	for i, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const migrationCreateLeadsSQLite = `
CREATE TABLE IF NOT EXISTS leads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id TEXT NOT NULL,
    name TEXT NOT NULL,
    company TEXT NOT NULL,
    email TEXT NOT NULL,
    lead_status TEXT NOT NULL DEFAULT 'inactive',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    published_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(lead_status);
`

const migrationCreateLeadsPostgres = `
CREATE TABLE IF NOT EXISTS leads (
    id SERIAL PRIMARY KEY,
    document_id TEXT NOT NULL,
    name TEXT NOT NULL,
    company TEXT NOT NULL,
    email TEXT NOT NULL,
    lead_status TEXT NOT NULL DEFAULT 'inactive',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    published_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(lead_status);
`
