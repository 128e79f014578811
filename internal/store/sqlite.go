package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/guardline/leads-cli/internal/extract"
	"github.com/guardline/leads-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite. Leads are stored
// as a JSON document plus filter columns; state tags live in a separate
// lead_states index table so state filtering stays a join, not a scan.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	source_url TEXT NOT NULL,
	lead_type  TEXT NOT NULL,
	org_name   TEXT NOT NULL,
	title      TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'new',
	confidence REAL NOT NULL,
	doc        TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS lead_states (
	lead_id    TEXT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
	state_code TEXT NOT NULL,
	PRIMARY KEY (lead_id, state_code)
);

CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
CREATE INDEX IF NOT EXISTS idx_leads_source ON leads(source);
CREATE INDEX IF NOT EXISTS idx_leads_source_url ON leads(source_url);
CREATE INDEX IF NOT EXISTS idx_lead_states_code ON lead_states(state_code);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// StoreLead inserts a lead and its state index rows in one transaction.
// A missing ID is assigned here.
func (s *SQLiteStore) StoreLead(ctx context.Context, l model.Lead) (string, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
	if l.Status == "" {
		l.Status = model.LeadStatusNew
	}

	doc, err := json.Marshal(l)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: marshal lead")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO leads (id, source, source_url, lead_type, org_name, title, status, confidence, doc, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Source, l.SourceURL, string(l.Type), l.Organization.Name,
		l.Opportunity.Title, string(l.Status), l.ConfidenceScore, string(doc), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: insert lead")
	}

	for _, st := range l.States {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO lead_states (lead_id, state_code) VALUES (?, ?)`,
			l.ID, st.Code,
		); err != nil {
			return "", eris.Wrapf(err, "sqlite: index state %s", st.Code)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", eris.Wrap(err, "sqlite: commit")
	}
	return l.ID, nil
}

// GetLead returns the lead with the given ID, or nil when absent.
func (s *SQLiteStore) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM leads WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get lead %s", id)
	}

	var l model.Lead
	if err := json.Unmarshal([]byte(doc), &l); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal lead")
	}
	return &l, nil
}

// ListLeads returns leads matching the filter in insertion order, plus the
// total count matching the filter ignoring limit/offset.
func (s *SQLiteStore) ListLeads(ctx context.Context, filter Filter) ([]model.Lead, int, error) {
	where, args, err := sqliteFilterClause(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM leads` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, eris.Wrap(err, "sqlite: count leads")
	}

	query := `SELECT doc FROM leads` + where + ` ORDER BY created_at ASC, id ASC`
	listArgs := args

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	query += ` LIMIT ?`
	listArgs = append(listArgs, limit)
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		listArgs = append(listArgs, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, eris.Wrap(err, "sqlite: list leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, eris.Wrap(err, "sqlite: scan lead")
		}
		var l model.Lead
		if err := json.Unmarshal([]byte(doc), &l); err != nil {
			return nil, 0, eris.Wrap(err, "sqlite: unmarshal lead")
		}
		leads = append(leads, l)
	}
	return leads, total, eris.Wrap(rows.Err(), "sqlite: list leads iterate")
}

// UpdateLeadStatus mutates only the lifecycle field; the stored document is
// rewritten so doc and columns stay consistent.
func (s *SQLiteStore) UpdateLeadStatus(ctx context.Context, id string, status model.LeadStatus) error {
	l, err := s.GetLead(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return eris.Errorf("lead not found: %s", id)
	}

	l.Status = status
	l.UpdatedAt = time.Now().UTC()
	doc, err := json.Marshal(l)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal lead")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE leads SET status = ?, doc = ?, updated_at = ? WHERE id = ?`,
		string(status), string(doc), l.UpdatedAt, id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update lead status %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("lead not found: %s", id)
	}
	return nil
}

// sqliteFilterClause builds the WHERE clause shared by count and list.
func sqliteFilterClause(filter Filter) (string, []any, error) {
	where := ` WHERE 1=1`
	var args []any

	if filter.State != "" {
		st := extract.NormalizeState(filter.State)
		if st == nil {
			return "", nil, eris.Errorf("store: unknown state %q", filter.State)
		}
		where += ` AND id IN (SELECT lead_id FROM lead_states WHERE state_code = ?)`
		args = append(args, st.Code)
	}
	if filter.Status != "" {
		where += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.Source != "" {
		where += ` AND source = ?`
		args = append(args, filter.Source)
	}
	if filter.Type != "" {
		where += ` AND lead_type = ?`
		args = append(args, string(filter.Type))
	}
	return where, args, nil
}
