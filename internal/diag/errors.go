// Package diag provides the single-diagnostic error type shared by the
// parser, IR builder, and backend stages: spec.md §7's propagation policy
// is "errors surface as soon as they are discovered... a single failure
// stops the whole compilation... reported... as a single diagnostic
// string", so there is deliberately no multi-error aggregation here,
// unlike the teacher's errors package (internal/errors/errors.go), which
// collects and renders many errors at once for a best-effort compiler.
package diag

import (
	"fmt"
	"strings"

	"github.com/VVsxmja/rcc/internal/token"
)

// Kind names one of the parse/semantic/backend error kinds enumerated in
// spec.md §7. It is not meant to be exhaustive of every Go error in the
// repository (lexer and comment-stripping failures have their own concrete
// types); it covers the parse, semantic and backend kinds that share this
// one formatted shape.
type Kind string

const (
	UnexpectedToken       Kind = "UnexpectedToken"
	ExpectedIdentifier    Kind = "ExpectedIdentifier"
	ExpectedType          Kind = "ExpectedType"
	ExpectedSemicolon     Kind = "ExpectedSemicolon"
	ExpectedCommaOrParen  Kind = "ExpectedCommaOrParen"
	Redefined             Kind = "Redefined"
	DuplicateParameter    Kind = "DuplicateParameter"
	UndefinedVariable     Kind = "UndefinedVariable"
	UndefinedFunction     Kind = "UndefinedFunction"
	ArityMismatch         Kind = "ArityMismatch"
	VoidArgument          Kind = "VoidArgument"
	VoidVariable          Kind = "VoidVariable"
	AssignTargetNotLvalue Kind = "AssignTargetNotLvalue"
	ReturnTypeMismatch    Kind = "ReturnTypeMismatch"
	NonConstantGlobalInit Kind = "NonConstantGlobalInitializer"
	UnsupportedComma      Kind = "UnsupportedComma"
	LocalFunctionUnsup    Kind = "LocalFunctionUnsupported"
	UnterminatedBlock     Kind = "UnterminatedBasicBlock"
	ModuleVerification    Kind = "ModuleVerificationFailed"
	TargetInitFailed      Kind = "TargetInitFailed"
	WriteFailed           Kind = "WriteFailed"
)

// Error is a single positioned compiler diagnostic. At most one ever
// escapes a pipeline run.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
	Source  string // full source text, for the caret line; optional
	File    string // optional
}

func New(kind Kind, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// WithSource attaches the source text and file name used to render the
// offending line and a caret under it.
func (e *Error) WithSource(source, file string) *Error {
	e.Source = source
	e.File = file
	return e
}

func (e *Error) Error() string { return e.Format() }

// Format renders "<kind>: <message>" plus, when source text is available,
// the offending line and a caret pointing at the column — the same shape
// as the teacher's CompilerError.Format, trimmed to a single error and
// with no ANSI color support (the CLI only ever prints one diagnostic).
func (e *Error) Format() string {
	var sb strings.Builder
	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%s: %s: %s\n", e.File, e.Pos, e.Kind, e.Message)
	} else {
		fmt.Fprintf(&sb, "%s: %s: %s\n", e.Pos, e.Kind, e.Message)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column))
		sb.WriteString("^")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
