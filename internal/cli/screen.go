package cli

import (
	"github.com/spf13/cobra"

	"fund-screening/internal/app"
)

var (
	screenInputs   []string
	screenCategory string
	screenQuarter  string
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Classify the screened fund universe per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ScreenOptions{
			Inputs:   screenInputs,
			Category: screenCategory,
			Quarter:  screenQuarter,
		}
		return getApp().Screen(cmd.Context(), opts)
	},
}

func init() {
	screenCmd.Flags().StringArrayVar(&screenInputs, "input", nil, "Screening export CSV (repeatable)")
	screenCmd.Flags().StringVar(&screenCategory, "category", "", "Category override for sources without a category column")
	screenCmd.Flags().StringVar(&screenQuarter, "quarter", "", "Evaluation period label, e.g. 2026Q2")
	_ = screenCmd.MarkFlagRequired("input")
}
