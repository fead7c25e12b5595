package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/midori-advisory/finplan-cli/internal/importer"
)

var (
	importFilePath string
	importCompany  string
	importSheet    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import statement workbooks into the store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if importCompany == "" {
			return eris.New("--company is required")
		}

		snaps, err := importer.ImportFile(importFilePath, importer.Options{
			CompanyID: importCompany,
			SheetName: importSheet,
		})
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			return eris.Errorf("no fiscal years found in %s", importFilePath)
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		saved, err := st.SaveSnapshots(ctx, snaps)
		if err != nil {
			return err
		}

		zap.L().Info("import complete",
			zap.Int("years", saved),
			zap.String("company", importCompany),
			zap.String("file", importFilePath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFilePath, "file", "", "XLSX or CSV statement file (required)")
	importCmd.Flags().StringVar(&importCompany, "company", "", "company id to import under (required)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "worksheet name (default: first sheet)")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}
