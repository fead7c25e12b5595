package main

import (
	"context"
	"fmt"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/midori-advisory/finplan-cli/internal/debtcap"
	"github.com/midori-advisory/finplan-cli/internal/indicator"
	"github.com/midori-advisory/finplan-cli/internal/store"
)

var (
	batchCompanies string
	batchYear      int
)

// companyReport is one company's combined read-only analysis.
type companyReport struct {
	CompanyID  string
	FiscalYear int
	Families   indicator.Families
	Ratios     indicator.RatioSet
	DebtCap    debtcap.Report
}

var batchCmd = &cobra.Command{
	Use:   "analyze-batch",
	Short: "Run indicators and debt capacity for several companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		ids := splitCompanies(batchCompanies)
		if len(ids) == 0 {
			return eris.New("--companies is required (comma-separated ids)")
		}
		if batchYear == 0 {
			return eris.New("--year is required")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		reports, failed, err := analyzeBatch(ctx, st, ids, batchYear, cfg.Batch.MaxConcurrentCompanies)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range reports {
			fmt.Fprintf(out, "%s FY%d\n", r.CompanyID, r.FiscalYear)
			fmt.Fprintf(out, "  Equity ratio           %.1f%% [%s]\n", r.Ratios.EquityRatio.Value, r.Ratios.EquityRatio.Status)
			fmt.Fprintf(out, "  Operating margin       %.1f%%\n", r.Families.Profitability["operating_income_to_sales_ratio"])
			fmt.Fprintf(out, "  Final debt capacity    %s\n", money(r.DebtCap.EquityRatio.FinalDebtCapacity))
			fmt.Fprintf(out, "  Conservative bound     %s\n\n", money(r.DebtCap.ConservativeBound))
		}

		zap.L().Info("batch complete",
			zap.Int("succeeded", len(reports)),
			zap.Int64("failed", failed),
		)
		return nil
	},
}

func splitCompanies(s string) []string {
	var out []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// analyzeBatch fans the read-only analyses out across companies. Individual
// failures are logged and counted, not fatal to the batch.
func analyzeBatch(ctx context.Context, st store.Store, ids []string, year, concurrency int) ([]companyReport, int64, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var (
		mu      sync.Mutex
		reports []companyReport
		failed  atomic.Int64
	)

	for _, id := range ids {
		g.Go(func() error {
			log := zap.L().With(zap.String("company", id))

			snap, err := st.GetSnapshot(gctx, id, year)
			if err != nil {
				failed.Add(1)
				log.Error("analysis failed", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			r := companyReport{
				CompanyID:  id,
				FiscalYear: year,
				Families:   indicator.Calculate(indicatorFigures(*snap), nil),
				Ratios:     indicator.SimpleRatios(*snap),
				DebtCap: debtcap.Analyze(debtcap.Inputs{
					Snapshot:          *snap,
					TargetEquityRatio: cfg.Assumptions.TargetEquityRatio,
					CollateralRatio:   cfg.Assumptions.CollateralRatio,
				}),
			}

			mu.Lock()
			reports = append(reports, r)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, failed.Load(), eris.Wrap(err, "batch analysis")
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].CompanyID < reports[j].CompanyID })
	return reports, failed.Load(), nil
}

func init() {
	batchCmd.Flags().StringVar(&batchCompanies, "companies", "", "comma-separated company ids (required)")
	batchCmd.Flags().IntVar(&batchYear, "year", 0, "fiscal year to analyze (required)")
	_ = batchCmd.MarkFlagRequired("companies")
	rootCmd.AddCommand(batchCmd)
}
