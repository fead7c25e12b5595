package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFrom_EmptyRows(t *testing.T) {
	n, err := CopyFrom(context.TODO(), nil, "statement_snapshots", []string{"company_id", "fiscal_year"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCopyFrom_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"statement_snapshots"}, []string{"company_id", "fiscal_year", "data"}).WillReturnResult(3)

	rows := [][]any{
		{"c1", 2023, "{}"},
		{"c1", 2024, "{}"},
		{"c1", 2025, "{}"},
	}
	n, err := CopyFrom(context.Background(), mock, "statement_snapshots", []string{"company_id", "fiscal_year", "data"}, rows)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyFrom_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"statement_snapshots"}, []string{"company_id", "fiscal_year"}).WillReturnError(fmt.Errorf("copy failed"))

	rows := [][]any{{"c1", 2024}}
	_, err = CopyFrom(context.Background(), mock, "statement_snapshots", []string{"company_id", "fiscal_year"}, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPY INTO statement_snapshots")
	assert.NoError(t, mock.ExpectationsWereMet())
}
