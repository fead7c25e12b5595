package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/midori-advisory/finplan-cli/internal/plan"
	"github.com/midori-advisory/finplan-cli/internal/simulate"
	"github.com/midori-advisory/finplan-cli/internal/statement"
)

// SQLiteStore implements Store using modernc.org/sqlite.
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
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS statement_snapshots (
	company_id  TEXT NOT NULL,
	fiscal_year INTEGER NOT NULL,
	data        TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	PRIMARY KEY (company_id, fiscal_year)
);

CREATE TABLE IF NOT EXISTS integrated_plans (
	company_id TEXT NOT NULL,
	base_year  INTEGER NOT NULL,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
	PRIMARY KEY (company_id, base_year)
);

CREATE TABLE IF NOT EXISTS projections (
	company_id TEXT NOT NULL,
	base_year  INTEGER NOT NULL,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
	PRIMARY KEY (company_id, base_year)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_company ON statement_snapshots(company_id);
CREATE INDEX IF NOT EXISTS idx_plans_company ON integrated_plans(company_id);
CREATE INDEX IF NOT EXISTS idx_projections_company ON projections(company_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap statement.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal snapshot")
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO statement_snapshots (company_id, fiscal_year, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (company_id, fiscal_year) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		snap.CompanyID, snap.FiscalYear, string(data), now, now,
	)
	return eris.Wrapf(err, "sqlite: save snapshot %s/%d", snap.CompanyID, snap.FiscalYear)
}

func (s *SQLiteStore) SaveSnapshots(ctx context.Context, snaps []statement.Snapshot) (int, error) {
	if len(snaps) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, snap := range snaps {
		data, err := json.Marshal(snap)
		if err != nil {
			return 0, eris.Wrap(err, "sqlite: marshal snapshot")
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO statement_snapshots (company_id, fiscal_year, data, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (company_id, fiscal_year) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
			snap.CompanyID, snap.FiscalYear, string(data), now, now,
		)
		if err != nil {
			return 0, eris.Wrapf(err, "sqlite: save snapshot %s/%d", snap.CompanyID, snap.FiscalYear)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit tx")
	}
	return len(snaps), nil
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, companyID string, fiscalYear int) (*statement.Snapshot, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM statement_snapshots WHERE company_id = ? AND fiscal_year = ?`,
		companyID, fiscalYear,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, eris.Wrapf(ErrSnapshotNotFound, "%s/%d", companyID, fiscalYear)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get snapshot %s/%d", companyID, fiscalYear)
	}

	var snap statement.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal snapshot")
	}
	return &snap, nil
}

func (s *SQLiteStore) ListSnapshots(ctx context.Context, companyID string, filter SnapshotFilter) ([]statement.Snapshot, error) {
	query := `SELECT data FROM statement_snapshots WHERE company_id = ?`
	args := []any{companyID}

	if filter.FromYear > 0 {
		query += ` AND fiscal_year >= ?`
		args = append(args, filter.FromYear)
	}
	if filter.ToYear > 0 {
		query += ` AND fiscal_year <= ?`
		args = append(args, filter.ToYear)
	}
	query += ` ORDER BY fiscal_year ASC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list snapshots")
	}
	defer rows.Close()

	var snaps []statement.Snapshot
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan snapshot")
		}
		var snap statement.Snapshot
		if err := json.Unmarshal([]byte(data), &snap); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal snapshot")
		}
		snaps = append(snaps, snap)
	}
	return snaps, eris.Wrap(rows.Err(), "sqlite: list snapshots iterate")
}

func (s *SQLiteStore) SavePlan(ctx context.Context, p plan.Integrated) error {
	data, err := json.Marshal(p)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal plan")
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO integrated_plans (company_id, base_year, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (company_id, base_year) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		p.CompanyID.String(), p.BaseYear, string(data), now, now,
	)
	return eris.Wrapf(err, "sqlite: save plan %s/%d", p.CompanyID, p.BaseYear)
}

func (s *SQLiteStore) GetPlan(ctx context.Context, companyID string, baseYear int) (*plan.Integrated, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM integrated_plans WHERE company_id = ? AND base_year = ?`,
		companyID, baseYear,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get plan %s/%d", companyID, baseYear)
	}

	var p plan.Integrated
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal plan")
	}
	return &p, nil
}

func (s *SQLiteStore) SaveProjection(ctx context.Context, companyID string, r simulate.Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal projection")
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projections (company_id, base_year, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (company_id, base_year) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		companyID, r.BaseYear, string(data), now, now,
	)
	return eris.Wrapf(err, "sqlite: save projection %s/%d", companyID, r.BaseYear)
}

func (s *SQLiteStore) GetProjection(ctx context.Context, companyID string, baseYear int) (*simulate.Result, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM projections WHERE company_id = ? AND base_year = ?`,
		companyID, baseYear,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get projection %s/%d", companyID, baseYear)
	}

	var r simulate.Result
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal projection")
	}
	return &r, nil
}
