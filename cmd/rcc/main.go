// Command rcc is the compiler driver: a single binary exposing the six
// pipeline-stage subcommands (preprocess, lex, syntax, semantic,
// compile-binary, compile-assembly) described in spec.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/VVsxmja/rcc/cmd/rcc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
