package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/midori-advisory/finplan-cli/internal/db"
	"github.com/midori-advisory/finplan-cli/internal/plan"
	"github.com/midori-advisory/finplan-cli/internal/simulate"
	"github.com/midori-advisory/finplan-cli/internal/statement"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"save_snapshot":   `INSERT INTO statement_snapshots (company_id, fiscal_year, data, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (company_id, fiscal_year) DO UPDATE SET data = $3, updated_at = $5`,
	"get_snapshot":    `SELECT data FROM statement_snapshots WHERE company_id = $1 AND fiscal_year = $2`,
	"save_plan":       `INSERT INTO integrated_plans (company_id, base_year, data, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (company_id, base_year) DO UPDATE SET data = $3, updated_at = $5`,
	"get_plan":        `SELECT data FROM integrated_plans WHERE company_id = $1 AND base_year = $2`,
	"save_projection": `INSERT INTO projections (company_id, base_year, data, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (company_id, base_year) DO UPDATE SET data = $3, updated_at = $5`,
	"get_projection":  `SELECT data FROM projections WHERE company_id = $1 AND base_year = $2`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// Pool returns the underlying database pool for use by subsystems that need
// direct query access (e.g., bulk import).
func (s *PostgresStore) Pool() db.Pool {
	return s.pool
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS statement_snapshots (
	company_id  TEXT NOT NULL,
	fiscal_year INTEGER NOT NULL,
	data        JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (company_id, fiscal_year)
);

CREATE TABLE IF NOT EXISTS integrated_plans (
	company_id TEXT NOT NULL,
	base_year  INTEGER NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (company_id, base_year)
);

CREATE TABLE IF NOT EXISTS projections (
	company_id TEXT NOT NULL,
	base_year  INTEGER NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (company_id, base_year)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_company ON statement_snapshots(company_id);
CREATE INDEX IF NOT EXISTS idx_plans_company ON integrated_plans(company_id);
CREATE INDEX IF NOT EXISTS idx_projections_company ON projections(company_id);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveSnapshot(ctx context.Context, snap statement.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal snapshot")
	}

	now := time.Now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO statement_snapshots (company_id, fiscal_year, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (company_id, fiscal_year) DO UPDATE SET data = $3, updated_at = $5`,
		snap.CompanyID, snap.FiscalYear, data, now, now,
	)
	return eris.Wrapf(err, "postgres: save snapshot %s/%d", snap.CompanyID, snap.FiscalYear)
}

var snapshotColumns = []string{"company_id", "fiscal_year", "data", "created_at", "updated_at"}

// SaveSnapshots bulk-loads a statement history in one round trip. A company
// seen for the first time goes through the COPY protocol directly; once any
// of the companies already has rows, the upsert path handles conflicts.
func (s *PostgresStore) SaveSnapshots(ctx context.Context, snaps []statement.Snapshot) (int, error) {
	if len(snaps) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(snaps))
	seen := make(map[string]bool)
	var companies []string
	for _, snap := range snaps {
		data, err := json.Marshal(snap)
		if err != nil {
			return 0, eris.Wrap(err, "postgres: marshal snapshot")
		}
		rows = append(rows, []any{snap.CompanyID, snap.FiscalYear, data, now, now})
		if !seen[snap.CompanyID] {
			seen[snap.CompanyID] = true
			companies = append(companies, snap.CompanyID)
		}
	}

	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM statement_snapshots WHERE company_id = ANY($1))`,
		companies,
	).Scan(&exists)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: check existing snapshots")
	}

	if !exists {
		n, err := db.CopyFrom(ctx, s.pool, "statement_snapshots", snapshotColumns, rows)
		if err != nil {
			return 0, eris.Wrap(err, "postgres: copy snapshots")
		}
		return int(n), nil
	}

	n, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "statement_snapshots",
		Columns:      snapshotColumns,
		ConflictKeys: []string{"company_id", "fiscal_year"},
		UpdateCols:   []string{"data", "updated_at"},
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: bulk save snapshots")
	}
	return int(n), nil
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, companyID string, fiscalYear int) (*statement.Snapshot, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM statement_snapshots WHERE company_id = $1 AND fiscal_year = $2`,
		companyID, fiscalYear,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Wrapf(ErrSnapshotNotFound, "%s/%d", companyID, fiscalYear)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get snapshot %s/%d", companyID, fiscalYear)
	}

	var snap statement.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal snapshot")
	}
	return &snap, nil
}

func (s *PostgresStore) ListSnapshots(ctx context.Context, companyID string, filter SnapshotFilter) ([]statement.Snapshot, error) {
	query := `SELECT data FROM statement_snapshots WHERE company_id = $1`
	args := []any{companyID}
	argIdx := 2

	if filter.FromYear > 0 {
		query += fmt.Sprintf(` AND fiscal_year >= $%d`, argIdx)
		args = append(args, filter.FromYear)
		argIdx++
	}
	if filter.ToYear > 0 {
		query += fmt.Sprintf(` AND fiscal_year <= $%d`, argIdx)
		args = append(args, filter.ToYear)
		argIdx++
	}
	query += ` ORDER BY fiscal_year ASC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list snapshots")
	}
	defer rows.Close()

	var snaps []statement.Snapshot
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan snapshot")
		}
		var snap statement.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal snapshot")
		}
		snaps = append(snaps, snap)
	}
	return snaps, eris.Wrap(rows.Err(), "postgres: list snapshots iterate")
}

func (s *PostgresStore) SavePlan(ctx context.Context, p plan.Integrated) error {
	data, err := json.Marshal(p)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal plan")
	}

	now := time.Now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO integrated_plans (company_id, base_year, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (company_id, base_year) DO UPDATE SET data = $3, updated_at = $5`,
		p.CompanyID.String(), p.BaseYear, data, now, now,
	)
	return eris.Wrapf(err, "postgres: save plan %s/%d", p.CompanyID, p.BaseYear)
}

func (s *PostgresStore) GetPlan(ctx context.Context, companyID string, baseYear int) (*plan.Integrated, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM integrated_plans WHERE company_id = $1 AND base_year = $2`,
		companyID, baseYear,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get plan %s/%d", companyID, baseYear)
	}

	var p plan.Integrated
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal plan")
	}
	return &p, nil
}

func (s *PostgresStore) SaveProjection(ctx context.Context, companyID string, r simulate.Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal projection")
	}

	now := time.Now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO projections (company_id, base_year, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (company_id, base_year) DO UPDATE SET data = $3, updated_at = $5`,
		companyID, r.BaseYear, data, now, now,
	)
	return eris.Wrapf(err, "postgres: save projection %s/%d", companyID, r.BaseYear)
}

func (s *PostgresStore) GetProjection(ctx context.Context, companyID string, baseYear int) (*simulate.Result, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM projections WHERE company_id = $1 AND base_year = $2`,
		companyID, baseYear,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get projection %s/%d", companyID, baseYear)
	}

	var r simulate.Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal projection")
	}
	return &r, nil
}
