package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cardprep/internal/crop"
)

var manualPixels bool

var manualCmd = &cobra.Command{
	Use:   "manual <input> <output> <top> <bottom> <left> <right>",
	Short: "Crop fixed insets from each side",
	Long: `Crop a fixed amount from each side of the image.

Insets are percentages of the image dimensions by default, or pixel counts
with --pixels. Use this when detection gets a shot wrong.`,
	Example: `  cardprep manual input.png output.png 15 15 20 20
  cardprep manual input.png output.png 500 500 500 500 --pixels`,
	Args: cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		insets, err := parseInsets(args[2:])
		if err != nil {
			return err
		}

		var report *crop.Report
		if manualPixels {
			report, err = crop.ManualPixels(cache, args[0], args[1], insets, cfg.Quality)
		} else {
			report, err = crop.ManualPercent(cache, args[0], args[1], insets, cfg.Quality)
		}
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	},
}

func init() {
	manualCmd.Flags().BoolVar(&manualPixels, "pixels", false, "treat insets as pixel counts instead of percentages")
	rootCmd.AddCommand(manualCmd)
}

func parseInsets(args []string) (crop.Insets, error) {
	vals := make([]int, 4)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return crop.Insets{}, err
		}
		vals[i] = n
	}
	return crop.Insets{Top: vals[0], Bottom: vals[1], Left: vals[2], Right: vals[3]}, nil
}
