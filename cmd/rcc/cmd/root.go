// Package cmd wires the rcc CLI's subcommands onto a cobra root command,
// following the same package shape as the teacher's cmd/dwscript/cmd:
// package-level flag variables shared by sibling command files, one file
// per subcommand, each registering itself from its own init().
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VVsxmja/rcc/internal/rtrace"
)

var (
	// Version is set by build flags; kept here so every subcommand's
	// --version output agrees.
	Version = "0.1.0-dev"

	// evalExpr lets every subcommand accept inline source via -e/--eval
	// instead of a file path argument.
	evalExpr string
)

var rootCmd = &cobra.Command{
	Use:     "rcc",
	Short:   "A compiler for a small C-like teaching language",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		if verbose {
			rtrace.SetLevel(2)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
