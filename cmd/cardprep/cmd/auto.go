package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cardprep/internal/crop"
)

var (
	autoMargin  float64
	autoMethod  string
	autoQuality int
)

var autoCmd = &cobra.Command{
	Use:   "auto <input> [output]",
	Short: "Detect and crop the card automatically",
	Long: `Detect the card rectangle in a photo and crop it with a margin.

The brightness detector handles dark cards on light backgrounds; when it
finds nothing (dark wooden desk shots) the edge detector takes over, and a
centered crop is the last resort. With no output path the input file is
overwritten.`,
	Example: `  cardprep auto Tip_011/Tip011.png
  cardprep auto Tip_011/Tip011.png Tip_011/cropped.png
  cardprep auto Tip_011/Tip011.png Tip_011/cropped.png --margin 5`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := ""
		if len(args) > 1 {
			output = args[1]
		}

		opts := autoOptions(cmd)
		report, err := crop.Auto(cache, input, output, opts)
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	},
}

func init() {
	autoCmd.Flags().Float64Var(&autoMargin, "margin", 3, "margin percentage around the detected card")
	autoCmd.Flags().StringVar(&autoMethod, "method", "auto", "detector: auto, brightness, edges, or center")
	autoCmd.Flags().IntVar(&autoQuality, "quality", 95, "JPEG quality for the output")
	rootCmd.AddCommand(autoCmd)
}

// autoOptions merges config defaults with explicitly set flags.
func autoOptions(cmd *cobra.Command) crop.Options {
	opts := crop.Options{
		Margin:        cfg.Margin,
		Quality:       cfg.Quality,
		MaxWorkDim:    cfg.MaxWorkDim,
		Method:        cfg.Method,
		AspectMin:     cfg.AspectMin,
		AspectMax:     cfg.AspectMax,
		AspectTarget:  cfg.AspectTarget,
		GoodAspectMin: cfg.AspectGoodMin,
		GoodAspectMax: cfg.AspectGoodMax,
	}
	if cmd.Flags().Changed("margin") {
		opts.Margin = autoMargin
	}
	if cmd.Flags().Changed("method") {
		opts.Method = autoMethod
	}
	if cmd.Flags().Changed("quality") {
		opts.Quality = autoQuality
	}
	return opts
}

// printReport writes the human-readable crop summary to stdout.
func printReport(r *crop.Report) {
	fmt.Printf("Original: %dx%d (%.1fMP)\n",
		r.OriginalWidth, r.OriginalHeight,
		float64(r.OriginalWidth)*float64(r.OriginalHeight)/1e6)
	fmt.Printf("Detected: (%d, %d) -> (%d, %d) via %s\n",
		r.Bounds.X1, r.Bounds.Y1, r.Bounds.X2, r.Bounds.Y2, r.Method)
	fmt.Printf("Cropped:  %dx%d (ratio %.2f:1)\n",
		r.CroppedWidth, r.CroppedHeight, r.AspectRatio)
	if !r.GoodAspect() {
		min, max := r.GoodAspectBand()
		fmt.Printf("Warning: ratio %.2f is outside the card band [%.1f, %.1f]\n",
			r.AspectRatio, min, max)
	}
	fmt.Printf("Saved:    %s\n", r.Output)
	fmt.Printf("Size:     %.2fMB -> %.2fMB (%.1f%% smaller)\n",
		float64(r.OriginalBytes)/1024/1024,
		float64(r.CroppedBytes)/1024/1024,
		r.SavingsPercent)
}
