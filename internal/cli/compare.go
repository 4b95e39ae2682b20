package cli

import (
	"github.com/spf13/cobra"

	"fund-screening/internal/app"
)

var (
	compareInputs   []string
	comparePrevious []string
	compareCategory string
	compareQuarter  string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the current universe against the prior quarter",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.CompareOptions{
			Inputs:   compareInputs,
			Previous: comparePrevious,
			Category: compareCategory,
			Quarter:  compareQuarter,
		}
		return getApp().Compare(cmd.Context(), opts)
	},
}

func init() {
	compareCmd.Flags().StringArrayVar(&compareInputs, "input", nil, "Current-period screening CSV (repeatable)")
	compareCmd.Flags().StringArrayVar(&comparePrevious, "previous", nil, "Prior-period screening CSV (repeatable)")
	compareCmd.Flags().StringVar(&compareCategory, "category", "", "Category override for sources without a category column")
	compareCmd.Flags().StringVar(&compareQuarter, "quarter", "", "Evaluation period label, e.g. 2026Q2")
	_ = compareCmd.MarkFlagRequired("input")
	_ = compareCmd.MarkFlagRequired("previous")
}
