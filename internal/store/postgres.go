package store

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/guardline/leads-cli/internal/extract"
	"github.com/guardline/leads-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies it
// for unit tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	source_url TEXT NOT NULL,
	lead_type  TEXT NOT NULL,
	org_name   TEXT NOT NULL,
	title      TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'new',
	confidence DOUBLE PRECISION NOT NULL,
	doc        JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
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

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) StoreLead(ctx context.Context, l model.Lead) (string, error) {
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
		return "", eris.Wrap(err, "postgres: marshal lead")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO leads (id, source, source_url, lead_type, org_name, title, status, confidence, doc, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.Source, l.SourceURL, string(l.Type), l.Organization.Name,
		l.Opportunity.Title, string(l.Status), l.ConfidenceScore, string(doc), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return "", eris.Wrap(err, "postgres: insert lead")
	}

	for _, st := range l.States {
		if _, err := s.pool.Exec(ctx,
			`INSERT INTO lead_states (lead_id, state_code) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			l.ID, st.Code,
		); err != nil {
			return "", eris.Wrapf(err, "postgres: index state %s", st.Code)
		}
	}
	return l.ID, nil
}

func (s *PostgresStore) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM leads WHERE id = $1`, id).Scan(&doc)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get lead %s", id)
	}

	var l model.Lead
	if err := json.Unmarshal(doc, &l); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal lead")
	}
	return &l, nil
}

func (s *PostgresStore) ListLeads(ctx context.Context, filter Filter) ([]model.Lead, int, error) {
	where, args, err := postgresFilterClause(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`+where, args...).Scan(&total); err != nil {
		return nil, 0, eris.Wrap(err, "postgres: count leads")
	}

	query := `SELECT doc FROM leads` + where + ` ORDER BY created_at ASC, id ASC`
	listArgs := args

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	query += placeholder(` LIMIT `, len(listArgs)+1)
	listArgs = append(listArgs, limit)
	if filter.Offset > 0 {
		query += placeholder(` OFFSET `, len(listArgs)+1)
		listArgs = append(listArgs, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, eris.Wrap(err, "postgres: list leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, eris.Wrap(err, "postgres: scan lead")
		}
		var l model.Lead
		if err := json.Unmarshal(doc, &l); err != nil {
			return nil, 0, eris.Wrap(err, "postgres: unmarshal lead")
		}
		leads = append(leads, l)
	}
	return leads, total, eris.Wrap(rows.Err(), "postgres: list leads iterate")
}

func (s *PostgresStore) UpdateLeadStatus(ctx context.Context, id string, status model.LeadStatus) error {
	now := time.Now().UTC()
	tag, err := s.pool.Exec(ctx,
		`UPDATE leads SET status = $1, updated_at = $2,
		 doc = jsonb_set(jsonb_set(doc, '{status}', to_jsonb($1::text)), '{updated_at}', to_jsonb($2::timestamptz))
		 WHERE id = $3`,
		string(status), now, id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update lead status %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("lead not found: %s", id)
	}
	return nil
}

func postgresFilterClause(filter Filter) (string, []any, error) {
	where := ` WHERE 1=1`
	var args []any

	if filter.State != "" {
		st := extract.NormalizeState(filter.State)
		if st == nil {
			return "", nil, eris.Errorf("store: unknown state %q", filter.State)
		}
		args = append(args, st.Code)
		where += placeholder(` AND id IN (SELECT lead_id FROM lead_states WHERE state_code = `, len(args)) + `)`
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where += placeholder(` AND status = `, len(args))
	}
	if filter.Source != "" {
		args = append(args, filter.Source)
		where += placeholder(` AND source = `, len(args))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		where += placeholder(` AND lead_type = `, len(args))
	}
	return where, args, nil
}

func placeholder(prefix string, n int) string {
	return prefix + "$" + strconv.Itoa(n)
}
