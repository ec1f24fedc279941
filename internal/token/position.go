// Package token defines the token vocabulary of the source language and the
// trie used to recognize it.
package token

import "fmt"

// Position identifies a location in source text for diagnostics.
// Column is a byte count from the start of the line, resetting on '\n',
// matching the convention used throughout the rest of the pipeline.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
