package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/midori-advisory/finplan-cli/internal/invest"
)

var (
	investFile         string
	investDiscountRate float64
)

// investFileFormat is the YAML authoring format for candidate projects.
type investFileFormat struct {
	DiscountRatePct float64          `yaml:"discount_rate_pct"`
	Projects        []invest.Project `yaml:"projects"`
}

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Appraise and rank candidate investments",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(investFile)
		if err != nil {
			return eris.Wrapf(err, "read projects %s", investFile)
		}

		var f investFileFormat
		if err := yaml.Unmarshal(data, &f); err != nil {
			return eris.Wrap(err, "parse projects")
		}
		if len(f.Projects) == 0 {
			return eris.New("no projects in file")
		}

		rate := investDiscountRate
		if rate == 0 {
			rate = f.DiscountRatePct
		}
		if rate == 0 {
			rate = cfg.Assumptions.DiscountRatePct
		}

		ranked := invest.Compare(f.Projects, rate)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Appraisal at %.1f%% discount rate, ranked by NPV\n", rate)
		for i, a := range ranked {
			fmt.Fprintf(out, "\n%d. %s\n", i+1, a.Project.Name)
			fmt.Fprintf(out, "   Initial investment   %s\n", money(a.Project.InitialInvestment))
			fmt.Fprintf(out, "   NPV                  %s\n", money(a.NPV))
			if a.Verdict.IRRDefined {
				fmt.Fprintf(out, "   IRR                  %.2f%%\n", a.IRR)
			} else {
				fmt.Fprintf(out, "   IRR                  undefined\n")
			}
			if a.Verdict.Recovered {
				fmt.Fprintf(out, "   Payback              %.1f years\n", a.PaybackYears)
			} else {
				fmt.Fprintf(out, "   Payback              never recovered\n")
			}
			fmt.Fprintf(out, "   Profitability index  %.2f\n", a.ProfitabilityIndex)
		}
		return nil
	},
}

func init() {
	investCmd.Flags().StringVar(&investFile, "file", "", "projects YAML file (required)")
	investCmd.Flags().Float64Var(&investDiscountRate, "discount-rate", 0, "discount rate in percent")
	_ = investCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(investCmd)
}
