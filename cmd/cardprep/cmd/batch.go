package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cardprep/internal/crop"
)

var (
	batchGlob   string
	batchMargin float64
)

var batchCmd = &cobra.Command{
	Use:   "batch <root>",
	Short: "Auto-crop every card photo under the tip folders",
	Long: `Walk the Tip_NNN folders under root and auto-crop every matching
card photo in place.

Failures on individual files are logged and skipped; the run continues and
finishes with a summary.`,
	Example: `  cardprep batch .
  cardprep batch . --glob "*.jpg" --margin 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]

		glob := cfg.Glob
		if cmd.Flags().Changed("glob") {
			glob = batchGlob
		}

		opts := crop.DefaultOptions()
		opts.Margin = cfg.Margin
		opts.Quality = cfg.Quality
		opts.MaxWorkDim = cfg.MaxWorkDim
		opts.Method = cfg.Method
		opts.AspectMin = cfg.AspectMin
		opts.AspectMax = cfg.AspectMax
		opts.AspectTarget = cfg.AspectTarget
		opts.GoodAspectMin = cfg.AspectGoodMin
		opts.GoodAspectMax = cfg.AspectGoodMax
		if cmd.Flags().Changed("margin") {
			opts.Margin = batchMargin
		}

		matches, err := filepath.Glob(filepath.Join(root, "Tip_*", glob))
		if err != nil {
			return fmt.Errorf("bad glob pattern %q: %w", glob, err)
		}
		sort.Strings(matches)
		if len(matches) == 0 {
			logger.Warn().Str("root", root).Str("glob", glob).Msg("no card photos found")
			return nil
		}

		cropped, failed := 0, 0
		for _, path := range matches {
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			report, err := crop.Auto(cache, path, "", opts)
			if err != nil {
				failed++
				logger.Error().Err(err).Str("path", path).Msg("crop failed")
				continue
			}
			cropped++
			logger.Info().
				Str("path", path).
				Str("method", string(report.Method)).
				Int("width", report.CroppedWidth).
				Int("height", report.CroppedHeight).
				Float64("savings_pct", report.SavingsPercent).
				Msg("cropped")
		}
		cache.Clear()

		fmt.Printf("Batch done: %d cropped, %d failed, %d total\n", cropped, failed, len(matches))
		if failed > 0 {
			return fmt.Errorf("%d of %d crops failed", failed, len(matches))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchGlob, "glob", "Tip*.png", "photo filename pattern inside each tip folder")
	batchCmd.Flags().Float64Var(&batchMargin, "margin", 3, "margin percentage around the detected card")
	rootCmd.AddCommand(batchCmd)
}
