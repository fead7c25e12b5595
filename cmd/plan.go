package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/midori-advisory/finplan-cli/internal/plan"
)

var (
	planFile string
	planSave bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build and inspect integrated business plans",
}

var planBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the four sub-plans from a plan file and integrate them",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f, err := plan.LoadFile(planFile)
		if err != nil {
			return err
		}

		p, err := f.Build()
		if err != nil {
			return err
		}

		v := p.Validate()
		if !v.Valid {
			return eris.Errorf("plan validation failed: %v", v.Errors)
		}

		s := p.Summarize()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Integrated plan %s, base year %d\n", p.CompanyID, p.BaseYear)
		for _, w := range v.Warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}
		fmt.Fprintf(out, "  Total labor cost        %s\n", money(s.TotalLaborCost))
		fmt.Fprintf(out, "  Total investment        %s\n", money(s.TotalCapitalInvestment))
		fmt.Fprintf(out, "  Total depreciation      %s\n", money(s.TotalDepreciation))
		fmt.Fprintf(out, "  Total interest          %s\n", money(s.TotalInterestPayment))
		fmt.Fprintf(out, "  Total principal         %s\n", money(s.TotalPrincipalRepayment))
		fmt.Fprintf(out, "  Avg working capital     %s\n", money(s.AverageWorkingCapital))
		fmt.Fprintf(out, "  Final debt balance      %s\n", money(s.FinalDebtBalance))

		for _, y := range p.Years {
			fmt.Fprintf(out, "\nYear %d\n", y.Year)
			fmt.Fprintf(out, "  Labor cost              %s (%d employees)\n", money(y.Labor.TotalLaborCost), y.Labor.PlannedEmployees)
			fmt.Fprintf(out, "  New investment          %s\n", money(y.Capex.TotalNewInvestment))
			fmt.Fprintf(out, "  Depreciation            %s\n", money(y.Capex.TotalDepreciation))
			fmt.Fprintf(out, "  Net working capital     %s\n", money(y.WorkingCapital.NetWorkingCapital))
			fmt.Fprintf(out, "  New borrowing           %s\n", money(y.Financing.NewBorrowing))
			fmt.Fprintf(out, "  Debt service            %s principal, %s interest\n",
				money(y.Financing.PrincipalRepayment), money(y.Financing.InterestPayment))
		}

		if planSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SavePlan(ctx, p); err != nil {
				return err
			}
			zap.L().Info("plan saved",
				zap.String("company", p.CompanyID.String()),
				zap.Int("base_year", p.BaseYear),
			)
		}
		return nil
	},
}

func init() {
	planBuildCmd.Flags().StringVar(&planFile, "file", "", "plan YAML file (required)")
	planBuildCmd.Flags().BoolVar(&planSave, "save", false, "persist the integrated plan")
	_ = planBuildCmd.MarkFlagRequired("file")
	planCmd.AddCommand(planBuildCmd)
	rootCmd.AddCommand(planCmd)
}
