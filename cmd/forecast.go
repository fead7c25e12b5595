package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/midori-advisory/finplan-cli/internal/regress"
)

var (
	forecastCSV   string
	forecastYears int
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Fit the cost structure from history and forecast sales",
	Long:  "Reads sales and total cost observations from a CSV, fits the variable/fixed cost split by least squares, derives the break-even point, and extends the sales trend forward.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sales, costs, err := readObservations(forecastCSV)
		if err != nil {
			return err
		}

		costModel, err := regress.Fit(sales, costs)
		if err != nil {
			return err
		}

		indices := make([]float64, len(sales))
		for i := range indices {
			indices[i] = float64(i)
		}
		trendModel, err := regress.Fit(indices, sales)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Cost structure (n=%d)\n", costModel.N)
		fmt.Fprintf(out, "  Variable cost ratio    %.1f%%\n", costModel.Slope*100)
		fmt.Fprintf(out, "  Fixed costs            %s\n", money(costModel.Intercept))
		fmt.Fprintf(out, "  R-squared              %.3f (%s)\n", costModel.R2, regress.Strength(costModel.R2))
		if be, ok := costModel.BreakEvenSales(); ok {
			fmt.Fprintf(out, "  Break-even sales       %s\n", money(be))
		} else {
			fmt.Fprintf(out, "  Break-even sales       undefined (variable cost ratio >= 100%%)\n")
		}

		fmt.Fprintf(out, "\nSales trend\n")
		fmt.Fprintf(out, "  Average growth rate    %.1f%%\n", regress.AverageGrowthRate(sales))
		fmt.Fprintf(out, "  Trend strength         %s (R²=%.3f)\n", regress.Strength(trendModel.R2), trendModel.R2)
		for _, p := range trendModel.Forecast(len(sales)-1, forecastYears) {
			fmt.Fprintf(out, "  Year +%d                %s\n", p.Index-len(sales)+1, money(p.Predicted))
		}
		return nil
	},
}

// readObservations parses a two-column CSV of sales,total_cost. A header
// row is skipped when the first field does not parse.
func readObservations(path string) (sales, costs []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "open observations %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, eris.Wrap(err, "read observations")
	}

	for i, rec := range records {
		if len(rec) < 2 {
			return nil, nil, eris.Errorf("row %d: want sales,total_cost", i+1)
		}
		s, sErr := strconv.ParseFloat(rec[0], 64)
		c, cErr := strconv.ParseFloat(rec[1], 64)
		if sErr != nil || cErr != nil {
			if i == 0 {
				continue // header
			}
			return nil, nil, eris.Errorf("row %d: non-numeric observation", i+1)
		}
		sales = append(sales, s)
		costs = append(costs, c)
	}
	if len(sales) < 2 {
		return nil, nil, eris.New("need at least 2 observations")
	}
	return sales, costs, nil
}

func init() {
	forecastCmd.Flags().StringVar(&forecastCSV, "csv", "", "CSV of sales,total_cost observations (required)")
	forecastCmd.Flags().IntVar(&forecastYears, "years", 3, "years to forecast")
	_ = forecastCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(forecastCmd)
}
