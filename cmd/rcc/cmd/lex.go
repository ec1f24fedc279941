package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/VVsxmja/rcc/internal/lexer"
	"github.com/VVsxmja/rcc/internal/preprocess"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting token sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
}

func runLex(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}
	stripped, err := preprocess.Strip(source)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	toks, err := lexer.ExtractTokens(stripped)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	for _, t := range toks {
		pretty.Println(t)
	}
	return nil
}
