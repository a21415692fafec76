package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cardprep/internal/scaffold"
)

var setupCount int

var setupCmd = &cobra.Command{
	Use:   "setup <root>",
	Short: "Create the Tip_NNN folder skeleton",
	Long: `Create Tip_001 through Tip_NNN under root, each with a templated
README.md. Existing folders and files are left alone, so the command is safe
to rerun after adding tips.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := scaffold.Setup(args[0], setupCount)
		if err != nil {
			return err
		}
		fmt.Printf("Created %d README files under %s\n", created, args[0])
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <root>",
	Short: "Migrate Day_NNN folders to the Tip_NNN naming",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moved, err := scaffold.Rename(args[0], scaffold.DefaultCount)
		if err != nil {
			return err
		}
		fmt.Printf("Renamed %d folders under %s\n", moved, args[0])
		return nil
	},
}

func init() {
	setupCmd.Flags().IntVar(&setupCount, "count", scaffold.DefaultCount, "number of tip folders in the series")
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(renameCmd)
}
