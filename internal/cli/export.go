package cli

import (
	"github.com/spf13/cobra"

	"fund-screening/internal/app"
)

var (
	exportInputs     []string
	exportCategory   string
	exportQuarter    string
	exportCSVPath    string
	exportPNGPath    string
	exportReportPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one classified category as CSV, chart, and/or report payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ExportOptions{
			Inputs:     exportInputs,
			Category:   exportCategory,
			Quarter:    exportQuarter,
			CSVPath:    exportCSVPath,
			PNGPath:    exportPNGPath,
			ReportPath: exportReportPath,
		}
		return getApp().Export(cmd.Context(), opts)
	},
}

func init() {
	exportCmd.Flags().StringArrayVar(&exportInputs, "input", nil, "Screening export CSV (repeatable)")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Category to export")
	exportCmd.Flags().StringVar(&exportQuarter, "quarter", "", "Evaluation period label, e.g. 2026Q2")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write the classified table CSV")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write the status distribution chart")
	exportCmd.Flags().StringVar(&exportReportPath, "report", "", "Path to write the document-renderer payload JSON")
	_ = exportCmd.MarkFlagRequired("input")
	_ = exportCmd.MarkFlagRequired("category")
}
