package cmd

import (
	"fmt"
	"os"
)

// readSource resolves a subcommand's input: either the -e/--eval inline
// string, or the single file path argument.
func readSource(args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline source")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], nil
}
