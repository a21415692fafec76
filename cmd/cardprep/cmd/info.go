package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cardprep/internal/imaging"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show image dimensions and suggested crops",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		info, err := imaging.Info(cache, path)
		if err != nil {
			return err
		}

		fmt.Printf("Image:        %s\n", path)
		fmt.Printf("Dimensions:   %dx%d\n", info.Width, info.Height)
		fmt.Printf("Aspect ratio: %.2f:1\n", info.AspectRatio())
		fmt.Printf("Format:       %s (%s, alpha: %v)\n", info.Format, info.ColorDepth, info.HasAlpha)
		fmt.Printf("File size:    %.2fMB\n", float64(info.FileSizeBytes)/1024/1024)
		fmt.Println()
		fmt.Println("Suggestions:")
		fmt.Printf("  cardprep auto %s\n", path)
		fmt.Printf("  cardprep manual %s output.png 15 15 20 20\n", path)
		fmt.Printf("  cardprep manual %s output.png %d %d %d %d --pixels\n",
			path, info.Height/4, info.Height/4, info.Width/4, info.Width/4)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
