package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VVsxmja/rcc/internal/ir"
)

var semanticCmd = &cobra.Command{
	Use:   "semantic [file]",
	Short: "Lower a source file to LLVM IR and print its textual form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSemantic,
}

func init() {
	rootCmd.AddCommand(semanticCmd)
	semanticCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "lower inline source instead of reading from file")
}

func runSemantic(_ *cobra.Command, args []string) error {
	b, _, filename, err := buildModule(args)
	if b != nil {
		defer b.Dispose()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	fmt.Print(b.Module().String())
	return nil
}

// buildModule runs preprocess/lex/parse/ir-build and returns the
// resulting Builder (owning the module) for the semantic and compile
// subcommands to share.
func buildModule(args []string) (b *ir.Builder, source, filename string, err error) {
	tu, source, filename, err := parseFile(args)
	if err != nil {
		return nil, source, filename, err
	}
	b = ir.NewBuilder(moduleNameFor(filename))
	b.SetSource(source, filename)
	if err := b.Build(tu); err != nil {
		return b, source, filename, err
	}
	return b, source, filename, nil
}

func moduleNameFor(filename string) string {
	if filename == "" {
		return "module"
	}
	return filename
}
