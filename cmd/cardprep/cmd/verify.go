package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cardprep/internal/ocr"
)

var verifyLanguage string

var verifyCmd = &cobra.Command{
	Use:   "verify <input> [expected text ...]",
	Short: "OCR a cropped card and check its text survived",
	Long: `Run OCR on a cropped card and check that the expected strings are
still readable. A crop that cut into the card edge usually loses the tip
number or part of the title; this catches it before the image is embedded.

With no expected strings the recognized text is printed for inspection.`,
	Example: `  cardprep verify Tip_011/Tip011.png "Tip 11"
  cardprep verify Tip_011/Tip011.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		want := args[1:]

		lang := cfg.Language
		if cmd.Flags().Changed("language") {
			lang = verifyLanguage
		}

		if len(want) == 0 {
			res, err := ocr.ExtractText(input, lang)
			if err != nil {
				return err
			}
			fmt.Println(res.FullText)
			return nil
		}

		v, err := ocr.Verify(input, lang, want)
		if err != nil {
			return err
		}
		for _, m := range v.Matches {
			status := "ok"
			if !m.Found {
				status = "MISSING"
			}
			fmt.Printf("%-8s %q\n", status, m.Want)
		}
		if !v.OK {
			fmt.Println()
			fmt.Println("Recognized text:")
			fmt.Println(v.FullText)
			return fmt.Errorf("verification failed for %s", input)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyLanguage, "language", "eng", "Tesseract language code")
	rootCmd.AddCommand(verifyCmd)
}
