package main

import (
	"context"
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/midori-advisory/finplan-cli/internal/statement"
	"github.com/midori-advisory/finplan-cli/internal/store"
)

// printer formats report figures with thousands separators.
var printer = message.NewPrinter(language.English)

func money(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func initStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Validate("store"); err != nil {
		return nil, err
	}
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "finplan.db"
		}
		st, err = store.NewSQLite(dsn)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// snapshotInput is the YAML authoring format for a statement year: the
// snapshot fields plus the optional detail table.
type snapshotInput struct {
	Snapshot statement.Snapshot `yaml:",inline"`
	Detail   statement.Detail   `yaml:"detail"`
}

func loadSnapshotFile(path string) (statement.Snapshot, statement.Detail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return statement.Snapshot{}, statement.Detail{}, eris.Wrapf(err, "read input %s", path)
	}

	var in snapshotInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return statement.Snapshot{}, statement.Detail{}, eris.Wrapf(err, "parse input %s", path)
	}
	return in.Snapshot.Normalized(), in.Detail, nil
}

func fetchSnapshot(ctx context.Context, st store.Store, companyID string, year int) (*statement.Snapshot, error) {
	if companyID == "" {
		return nil, eris.New("company id is required")
	}
	if year == 0 {
		return nil, eris.New("fiscal year is required")
	}
	return st.GetSnapshot(ctx, companyID, year)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
