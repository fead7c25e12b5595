package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/midori-advisory/finplan-cli/internal/plan"
	"github.com/midori-advisory/finplan-cli/internal/simulate"
)

var (
	simulateCompany      string
	simulateBaseYear     int
	simulatePlanFile     string
	simulateExistingDebt float64
	simulateSaveResult   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project three years of financial statements from a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := fetchSnapshot(ctx, st, simulateCompany, simulateBaseYear)
		if err != nil {
			return err
		}

		var p plan.Integrated
		if simulatePlanFile != "" {
			f, err := plan.LoadFile(simulatePlanFile)
			if err != nil {
				return err
			}
			built, err := f.Build()
			if err != nil {
				return err
			}
			p = built
		} else {
			stored, err := st.GetPlan(ctx, simulateCompany, simulateBaseYear)
			if err != nil {
				return err
			}
			if stored == nil {
				return eris.Errorf("no stored plan for %s/%d; pass --plan", simulateCompany, simulateBaseYear)
			}
			p = *stored
		}

		base := simulate.BaseFromSnapshot(*snap, simulateExistingDebt)
		result := simulate.Run(base, p, simulate.Assumptions{
			SalesGrowthRates:  []float64{cfg.Assumptions.SalesGrowthRatePct},
			CostOfSalesRatios: []float64{cfg.Assumptions.CostOfSalesRatioPct},
			SGARatios:         []float64{cfg.Assumptions.SGARatioPct},
			TaxRate:           cfg.Assumptions.TaxRate,
		})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Projection for %s, base year %d\n", simulateCompany, result.BaseYear)
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}
		for _, y := range result.Years {
			fmt.Fprintf(out, "\nFY%d\n", y.Year)
			fmt.Fprintf(out, "  Sales                  %s\n", money(y.PL.Sales))
			fmt.Fprintf(out, "  Operating income       %s\n", money(y.PL.OperatingIncome))
			fmt.Fprintf(out, "  Net income             %s\n", money(y.PL.NetIncome))
			fmt.Fprintf(out, "  Operating cash flow    %s\n", money(y.CF.OperatingCashFlow))
			fmt.Fprintf(out, "  Ending cash            %s\n", money(y.CF.EndingCashBalance))
			fmt.Fprintf(out, "  Total assets           %s\n", money(y.BS.TotalAssets))
			fmt.Fprintf(out, "  Liabilities + equity   %s\n", money(y.BS.TotalLiabilities+y.BS.TotalEquity))
			fmt.Fprintf(out, "  Equity ratio           %.1f%%\n", pctOf(y.BS.TotalEquity, y.BS.TotalAssets))
		}

		if simulateSaveResult {
			if err := st.SaveProjection(ctx, simulateCompany, result); err != nil {
				return err
			}
			zap.L().Info("projection saved",
				zap.String("company", simulateCompany),
				zap.Int("base_year", result.BaseYear),
			)
		}
		return nil
	},
}

func pctOf(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}

func init() {
	simulateCmd.Flags().StringVar(&simulateCompany, "company", "", "company id in the store")
	simulateCmd.Flags().IntVar(&simulateBaseYear, "base-year", 0, "base fiscal year")
	simulateCmd.Flags().StringVar(&simulatePlanFile, "plan", "", "plan YAML file (default: stored plan)")
	simulateCmd.Flags().Float64Var(&simulateExistingDebt, "existing-debt", 0, "interest-bearing debt at the base year")
	simulateCmd.Flags().BoolVar(&simulateSaveResult, "save", false, "persist the projection")
	rootCmd.AddCommand(simulateCmd)
}
