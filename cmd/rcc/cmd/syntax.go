package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/lexer"
	"github.com/VVsxmja/rcc/internal/parser"
	"github.com/VVsxmja/rcc/internal/preprocess"
)

var syntaxCmd = &cobra.Command{
	Use:   "syntax [file]",
	Short: "Parse a source file and print the resulting translation unit",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSyntax,
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
	syntaxCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading from file")
}

func runSyntax(_ *cobra.Command, args []string) error {
	tu, _, filename, err := parseFile(args)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	pretty.Println(tu)
	return nil
}

// parseFile runs the preprocess/lex/parse pipeline shared by syntax,
// semantic, and the compile subcommands.
func parseFile(args []string) (tu *ast.TranslationUnit, source, filename string, err error) {
	source, filename, err = readSource(args)
	if err != nil {
		return nil, "", filename, err
	}
	stripped, err := preprocess.Strip(source)
	if err != nil {
		return nil, source, filename, err
	}
	toks, err := lexer.ExtractTokens(stripped)
	if err != nil {
		return nil, source, filename, err
	}
	unit, err := parser.New(toks).SetSource(stripped, filename).ParseTranslationUnit()
	if err != nil {
		return nil, source, filename, err
	}
	return unit, stripped, filename, nil
}
