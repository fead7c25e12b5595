package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/midori-advisory/finplan-cli/internal/statement"
)

var (
	restructureInput   string
	restructureCompany string
	restructureYear    int
)

var restructureCmd = &cobra.Command{
	Use:   "restructure",
	Short: "Reclassify a fiscal-year statement into the analyst form",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var (
			snap   statement.Snapshot
			detail statement.Detail
		)
		if restructureInput != "" {
			s, d, err := loadSnapshotFile(restructureInput)
			if err != nil {
				return err
			}
			snap, detail = s, d
		} else {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			s, err := fetchSnapshot(ctx, st, restructureCompany, restructureYear)
			if err != nil {
				return err
			}
			snap = *s
		}

		pl := statement.RestructurePL(snap, detail)
		bs := statement.RestructureBS(snap, detail)
		av := statement.AddedValue(pl)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Restructured PL (FY%d)\n", snap.FiscalYear)
		fmt.Fprintf(out, "  Sales                  %s\n", money(pl.Sales))
		fmt.Fprintf(out, "  Variable expenses      %s\n", money(pl.VariableExpenses))
		fmt.Fprintf(out, "  Fixed expenses         %s\n", money(pl.FixedExpenses))
		fmt.Fprintf(out, "  Gross added value      %s\n", money(pl.GrossAddedValue))
		fmt.Fprintf(out, "  Total labor cost       %s\n", money(pl.TotalLaborCost))
		fmt.Fprintf(out, "  Capital regeneration   %s\n", money(pl.CapitalRegenerationCost))

		fmt.Fprintf(out, "\nRestructured BS\n")
		fmt.Fprintf(out, "  Cash on hand           %s\n", money(bs.CashOnHand))
		fmt.Fprintf(out, "  Trade receivables      %s\n", money(bs.TradeReceivables))
		fmt.Fprintf(out, "  Inventory assets       %s\n", money(bs.InventoryAssets))
		fmt.Fprintf(out, "  Trade payables         %s\n", money(bs.TradePayables))
		fmt.Fprintf(out, "  Short-term debt        %s\n", money(bs.TotalShortTermDebt))

		fmt.Fprintf(out, "\nAdded value composition\n")
		fmt.Fprintf(out, "  Labor distribution     %.1f%%\n", av.LaborDistributionRatio)
		fmt.Fprintf(out, "  Capital distribution   %.1f%%\n", av.CapitalDistributionRatio)
		return nil
	},
}

func init() {
	restructureCmd.Flags().StringVar(&restructureInput, "input", "", "YAML statement file (skips the store)")
	restructureCmd.Flags().StringVar(&restructureCompany, "company", "", "company id in the store")
	restructureCmd.Flags().IntVar(&restructureYear, "year", 0, "fiscal year")
	rootCmd.AddCommand(restructureCmd)
}
