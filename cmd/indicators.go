package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/midori-advisory/finplan-cli/internal/indicator"
	"github.com/midori-advisory/finplan-cli/internal/statement"
	"github.com/midori-advisory/finplan-cli/internal/store"
)

var (
	indicatorsCompany  string
	indicatorsYear     int
	indicatorsPrevYear int
)

var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Calculate the four indicator families with YoY grades",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := fetchSnapshot(ctx, st, indicatorsCompany, indicatorsYear)
		if err != nil {
			return err
		}

		prevYear := indicatorsPrevYear
		if prevYear == 0 {
			prevYear = indicatorsYear - 1
		}

		var prev *indicator.Figures
		prevSnap, err := st.GetSnapshot(ctx, indicatorsCompany, prevYear)
		switch {
		case err == nil:
			f := indicatorFigures(*prevSnap)
			prev = &f
		case errors.Is(err, store.ErrSnapshotNotFound) && indicatorsPrevYear == 0:
			// Report without comparisons.
		default:
			return err
		}

		families := indicator.Calculate(indicatorFigures(*snap), prev)
		ratios := indicator.SimpleRatios(*snap)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Indicators for %s FY%d\n\n", indicatorsCompany, indicatorsYear)

		fmt.Fprintf(out, "Quick ratios\n")
		printRatio(out, "operating profit margin", ratios.OperatingProfitMargin)
		printRatio(out, "current ratio", ratios.CurrentRatio)
		printRatio(out, "equity ratio", ratios.EquityRatio)
		printRatio(out, "ROA", ratios.ROA)
		printRatio(out, "ROE", ratios.ROE)

		printFamily(out, "Growth", families.Growth, families.Comparisons["growth"])
		printFamily(out, "Profitability", families.Profitability, families.Comparisons["profitability"])
		printFamily(out, "Financial strength", families.FinancialStrength, families.Comparisons["financial_strength"])
		printFamily(out, "Productivity", families.Productivity, families.Comparisons["productivity"])
		return nil
	},
}

func indicatorFigures(s statement.Snapshot) indicator.Figures {
	pl := statement.RestructurePL(s, statement.Detail{})
	bs := statement.RestructureBS(s, statement.Detail{})
	return indicator.FiguresFrom(s, pl, bs)
}

func printRatio(out io.Writer, name string, r indicator.Ratio) {
	fmt.Fprintf(out, "  %-28s %10.2f  [%s]\n", name, r.Value, r.Status)
}

func printFamily(out io.Writer, title string, values map[string]float64, cmp map[string]indicator.Comparison) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", title)
	for _, k := range sortedKeys(values) {
		if c, ok := cmp[k]; ok {
			fmt.Fprintf(out, "  %-36s %12.2f  %s %+.1f%%\n", k, values[k], c.Grade, c.Ratio)
			continue
		}
		fmt.Fprintf(out, "  %-36s %12.2f\n", k, values[k])
	}
}

func init() {
	indicatorsCmd.Flags().StringVar(&indicatorsCompany, "company", "", "company id in the store")
	indicatorsCmd.Flags().IntVar(&indicatorsYear, "year", 0, "fiscal year")
	indicatorsCmd.Flags().IntVar(&indicatorsPrevYear, "prev-year", 0, "comparison year (default: year-1 when stored)")
	rootCmd.AddCommand(indicatorsCmd)
}
