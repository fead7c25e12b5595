package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/midori-advisory/finplan-cli/internal/debtcap"
	"github.com/midori-advisory/finplan-cli/internal/statement"
)

var (
	debtcapCompany  string
	debtcapYear     int
	debtcapInput    string
	debtcapCashFlow float64
	debtcapMethod   string
)

var debtcapCmd = &cobra.Command{
	Use:   "debtcap",
	Short: "Estimate additional debt capacity by four methods",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var snap statement.Snapshot
		if debtcapInput != "" {
			s, _, err := loadSnapshotFile(debtcapInput)
			if err != nil {
				return err
			}
			snap = s
		} else {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			s, err := fetchSnapshot(ctx, st, debtcapCompany, debtcapYear)
			if err != nil {
				return err
			}
			snap = *s
		}

		report := debtcap.Analyze(debtcap.Inputs{
			Snapshot:          snap,
			AnnualCashFlow:    debtcapCashFlow,
			TargetEquityRatio: cfg.Assumptions.TargetEquityRatio,
			CollateralRatio:   cfg.Assumptions.CollateralRatio,
		})

		out := cmd.OutOrStdout()
		if debtcapMethod == "" || debtcapMethod == "equity" {
			e := report.EquityRatio
			fmt.Fprintf(out, "Equity-ratio method (target %.0f%%)\n", e.TargetEquityRatio)
			fmt.Fprintf(out, "  Current equity ratio   %.1f%%\n", e.CurrentEquityRatio)
			fmt.Fprintf(out, "  Additional capacity    %s\n", money(e.AdditionalDebtCapacity))
			fmt.Fprintf(out, "  Safe debt limit (5xCF) %s\n", money(e.SafeDebtLimit))
			fmt.Fprintf(out, "  Final capacity         %s\n", money(e.FinalDebtCapacity))
			fmt.Fprintf(out, "  Health                 %s\n", e.Health.Overall)
		}
		if debtcapMethod == "" || debtcapMethod == "collateral" {
			c := report.Collateral
			fmt.Fprintf(out, "\nCollateral method\n")
			fmt.Fprintf(out, "  Collateral value       %s\n", money(c.CollateralValue))
			fmt.Fprintf(out, "  Allowable additional   %s\n", money(c.AllowableDebt))
		}
		if debtcapMethod == "" || debtcapMethod == "interest" {
			si := report.SafeInterest
			fmt.Fprintf(out, "\nSafe-interest method\n")
			fmt.Fprintf(out, "  Interest burden        %.2f%% of gross profit\n", si.CurrentBurdenRatio*100)
			fmt.Fprintf(out, "  Allowable total debt   %s\n", money(si.AllowableDebt))
			fmt.Fprintf(out, "  Estimated current debt %s\n", money(si.CurrentEstimatedDebt))
			fmt.Fprintf(out, "  Additional capacity    %s\n", money(si.AdditionalCapacity))
			fmt.Fprintf(out, "  Evaluation             %s\n", si.Evaluation)
		}
		if debtcapMethod == "" || debtcapMethod == "sensitivity" {
			fmt.Fprintf(out, "\nRate sensitivity\n")
			for _, row := range report.Sensitivity {
				fmt.Fprintf(out, "  %4.1f%%  allowable %14s  annual interest %12s\n",
					row.RatePct, money(row.AllowableDebt), money(row.AnnualInterest))
			}
		}
		if debtcapMethod == "" {
			fmt.Fprintf(out, "\nConservative bound       %s\n", money(report.ConservativeBound))
		}
		return nil
	},
}

func init() {
	debtcapCmd.Flags().StringVar(&debtcapCompany, "company", "", "company id in the store")
	debtcapCmd.Flags().IntVar(&debtcapYear, "year", 0, "fiscal year")
	debtcapCmd.Flags().StringVar(&debtcapInput, "input", "", "YAML statement file (skips the store)")
	debtcapCmd.Flags().Float64Var(&debtcapCashFlow, "cash-flow", 0, "annual cash flow (net income + depreciation)")
	debtcapCmd.Flags().StringVar(&debtcapMethod, "method", "", "equity|collateral|interest|sensitivity (default: all)")
	rootCmd.AddCommand(debtcapCmd)
}
