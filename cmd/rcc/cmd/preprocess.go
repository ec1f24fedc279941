package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VVsxmja/rcc/internal/preprocess"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess [file]",
	Short: "Strip comments from a source file and print the result",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreprocess,
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
	preprocessCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "preprocess inline source instead of reading from file")
}

func runPreprocess(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}
	stripped, err := preprocess.Strip(source)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	fmt.Print(stripped)
	return nil
}
