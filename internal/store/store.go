package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/midori-advisory/finplan-cli/internal/plan"
	"github.com/midori-advisory/finplan-cli/internal/simulate"
	"github.com/midori-advisory/finplan-cli/internal/statement"
)

// ErrSnapshotNotFound reports a snapshot lookup for a company/year pair that
// was never saved. Callers for whom the year is optional test with errors.Is.
var ErrSnapshotNotFound = eris.New("snapshot not found")

// SnapshotFilter specifies criteria for listing statement snapshots.
type SnapshotFilter struct {
	FromYear int `json:"from_year,omitempty"`
	ToYear   int `json:"to_year,omitempty"`
	Limit    int `json:"limit,omitempty"`
}

// Store defines persistence for statement snapshots, integrated plans and
// projection results. Snapshots are keyed by company and fiscal year; plans
// and projections by company and base year. GetSnapshot fails when the row
// is missing; GetPlan and GetProjection return nil without error, since a
// company legitimately may not have planned yet.
type Store interface {
	// Snapshots
	SaveSnapshot(ctx context.Context, snap statement.Snapshot) error
	SaveSnapshots(ctx context.Context, snaps []statement.Snapshot) (int, error)
	GetSnapshot(ctx context.Context, companyID string, fiscalYear int) (*statement.Snapshot, error)
	ListSnapshots(ctx context.Context, companyID string, filter SnapshotFilter) ([]statement.Snapshot, error)

	// Plans
	SavePlan(ctx context.Context, p plan.Integrated) error
	GetPlan(ctx context.Context, companyID string, baseYear int) (*plan.Integrated, error)

	// Projections
	SaveProjection(ctx context.Context, companyID string, r simulate.Result) error
	GetProjection(ctx context.Context, companyID string, baseYear int) (*simulate.Result, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
