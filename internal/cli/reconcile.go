package cli

import (
	"github.com/spf13/cobra"

	"fund-screening/internal/app"
)

var (
	reconcileInputs    []string
	reconcilePortfolio string
	reconcileCategory  string
	reconcileQuarter   string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile current holdings against the screened universe",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ReconcileOptions{
			Inputs:    reconcileInputs,
			Portfolio: reconcilePortfolio,
			Category:  reconcileCategory,
			Quarter:   reconcileQuarter,
		}
		return getApp().Reconcile(cmd.Context(), opts)
	},
}

func init() {
	reconcileCmd.Flags().StringArrayVar(&reconcileInputs, "input", nil, "Screening export CSV (repeatable)")
	reconcileCmd.Flags().StringVar(&reconcilePortfolio, "portfolio", "", "Holdings file (CSV or workbook)")
	reconcileCmd.Flags().StringVar(&reconcileCategory, "category", "", "Category override for sources without a category column")
	reconcileCmd.Flags().StringVar(&reconcileQuarter, "quarter", "", "Evaluation period label, e.g. 2026Q2")
	_ = reconcileCmd.MarkFlagRequired("input")
	_ = reconcileCmd.MarkFlagRequired("portfolio")
}
