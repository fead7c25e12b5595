package store

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midori-advisory/finplan-cli/internal/statement"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_SaveSnapshot(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO statement_snapshots`).
		WithArgs("co-1", 2024, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.SaveSnapshot(context.Background(), statement.Snapshot{CompanyID: "co-1", FiscalYear: 2024})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetSnapshot_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT data FROM statement_snapshots WHERE company_id = \$1 AND fiscal_year = \$2`).
		WithArgs("co-missing", 2024).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetSnapshot(context.Background(), "co-missing", 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetSnapshot_Found(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	data := []byte(`{"company_id":"co-1","fiscal_year":2024,"sales":100000000}`)
	mock.ExpectQuery(`SELECT data FROM statement_snapshots`).
		WithArgs("co-1", 2024).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(data))

	snap, err := s.GetSnapshot(context.Background(), "co-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, "co-1", snap.CompanyID)
	assert.InDelta(t, 100_000_000, snap.Sales, 1e-6)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListSnapshots(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows([]string{"data"}).
		AddRow([]byte(`{"company_id":"co-1","fiscal_year":2023}`)).
		AddRow([]byte(`{"company_id":"co-1","fiscal_year":2024}`))
	mock.ExpectQuery(`SELECT data FROM statement_snapshots WHERE company_id = \$1`).
		WithArgs("co-1", 100).
		WillReturnRows(rows)

	snaps, err := s.ListSnapshots(context.Background(), "co-1", SnapshotFilter{})
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 2023, snaps[0].FiscalYear)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveSnapshots_FirstLoadUsesCopy(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs([]string{"co-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectCopyFrom(pgx.Identifier{"statement_snapshots"},
		[]string{"company_id", "fiscal_year", "data", "created_at", "updated_at"}).
		WillReturnResult(2)

	n, err := s.SaveSnapshots(context.Background(), []statement.Snapshot{
		{CompanyID: "co-1", FiscalYear: 2023},
		{CompanyID: "co-1", FiscalYear: 2024},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveSnapshots_Bulk(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs([]string{"co-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TEMP TABLE "_tmp_upsert_statement_snapshots"`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"_tmp_upsert_statement_snapshots"},
		[]string{"company_id", "fiscal_year", "data", "created_at", "updated_at"}).
		WillReturnResult(2)
	mock.ExpectExec(`INSERT INTO "statement_snapshots"`).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	n, err := s.SaveSnapshots(context.Background(), []statement.Snapshot{
		{CompanyID: "co-1", FiscalYear: 2023},
		{CompanyID: "co-1", FiscalYear: 2024},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetPlan_Missing(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT data FROM integrated_plans`).
		WithArgs("co-1", 2024).
		WillReturnError(pgx.ErrNoRows)

	p, err := s.GetPlan(context.Background(), "co-1", 2024)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetProjection_Missing(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT data FROM projections`).
		WithArgs("co-1", 2024).
		WillReturnError(pgx.ErrNoRows)

	r, err := s.GetProjection(context.Background(), "co-1", 2024)
	require.NoError(t, err)
	assert.Nil(t, r)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS statement_snapshots`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
