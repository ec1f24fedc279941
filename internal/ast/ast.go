// Package ast defines the syntax tree produced by the parser: expressions,
// statements, declarations, blocks, and the translation unit that owns
// them all.
package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/VVsxmja/rcc/internal/token"
	"github.com/VVsxmja/rcc/internal/types"
)

// Node is the base interface every tree node implements.
type Node interface {
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Constant is an integer literal.
type Constant struct {
	Token token.Token
	Value int32
}

func (*Constant) expressionNode()       {}
func (c *Constant) Pos() token.Position { return c.Token.Pos }
func (c *Constant) String() string      { return strconv.FormatInt(int64(c.Value), 10) }

// Variable is a bare identifier reference.
type Variable struct {
	Token token.Token
	Name  string
}

func (*Variable) expressionNode()       {}
func (v *Variable) Pos() token.Position { return v.Token.Pos }
func (v *Variable) String() string      { return v.Name }

// Call is a function call with a comma-separated argument list.
type Call struct {
	Token token.Token
	Name  string
	Args  []Expression
}

func (*Call) expressionNode()       {}
func (c *Call) Pos() token.Position { return c.Token.Pos }
func (c *Call) String() string {
	var sb bytes.Buffer
	sb.WriteString(c.Name)
	sb.WriteString("(")
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(")")
	return sb.String()
}

// Paren is an explicitly parenthesized expression.
type Paren struct {
	Token token.Token
	Inner Expression
}

func (*Paren) expressionNode()       {}
func (p *Paren) Pos() token.Position { return p.Token.Pos }
func (p *Paren) String() string {
	// A Binary already renders inside its own parentheses.
	if _, ok := p.Inner.(*Binary); ok {
		return p.Inner.String()
	}
	return "(" + p.Inner.String() + ")"
}

// PrefixUnary is one of +, -, ! applied to an operand.
type PrefixUnary struct {
	Token   token.Token
	Op      token.SymbolID
	Operand Expression
}

func (*PrefixUnary) expressionNode()       {}
func (u *PrefixUnary) Pos() token.Position { return u.Token.Pos }
func (u *PrefixUnary) String() string      { return u.Op.String() + u.Operand.String() }

// Binary is a binary expression with an operator symbol between two
// operands; it also represents assignment (op == token.Assign) and the
// still-unimplemented comma operator (op == token.Comma).
type Binary struct {
	Token token.Token
	Left  Expression
	Op    token.SymbolID
	Right Expression
}

func (*Binary) expressionNode()       {}
func (b *Binary) Pos() token.Position { return b.Token.Pos }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// ParameterDefinition is a function parameter's (Type, name) pair. Type
// must not be types.Void — enforced by the parser and defensively
// rechecked by the IR builder.
type ParameterDefinition struct {
	Type types.Type
	Name string
}

// VariableDecl declares a variable, local or global depending on the
// context it appears in, with an optional initializer.
type VariableDecl struct {
	Token       token.Token
	Type        types.Type
	Name        string
	Initializer Expression // nil if absent
}

func (*VariableDecl) statementNode()       {}
func (v *VariableDecl) Pos() token.Position { return v.Token.Pos }
func (v *VariableDecl) String() string {
	s := v.Type.String() + " " + v.Name
	if v.Initializer != nil {
		s += " = " + v.Initializer.String()
	}
	return s + ";"
}

// FunctionDecl is either a forward declaration (Body == nil) or a
// definition (Body != nil).
type FunctionDecl struct {
	Token      token.Token
	ReturnType types.Type
	Name       string
	Params     []ParameterDefinition
	Body       *Block // nil for a prototype
}

func (*FunctionDecl) statementNode()       {}
func (f *FunctionDecl) Pos() token.Position { return f.Token.Pos }
func (f *FunctionDecl) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Type.String() + " " + p.Name
	}
	sig := f.ReturnType.String() + " " + f.Name + "(" + strings.Join(parts, ", ") + ")"
	if f.Body == nil {
		return sig + ";"
	}
	return sig + " " + f.Body.String()
}

// IsDefinition reports whether this declaration has a body.
func (f *FunctionDecl) IsDefinition() bool { return f.Body != nil }

// Declaration is either a *VariableDecl or a *FunctionDecl. Both already
// satisfy Statement (they can appear directly inside a Block), so
// Declaration is just a naming alias used where the grammar specifically
// expects one.
type Declaration = Statement

// Empty is the `;` statement.
type Empty struct{ Token token.Token }

func (*Empty) statementNode()       {}
func (e *Empty) Pos() token.Position { return e.Token.Pos }
func (e *Empty) String() string      { return ";" }

// ExpressionStatement wraps an expression evaluated for its side effect.
type ExpressionStatement struct {
	Token token.Token
	Expr  Expression
}

func (*ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) Pos() token.Position { return e.Token.Pos }
func (e *ExpressionStatement) String() string      { return e.Expr.String() + ";" }

// Block is an ordered sequence of declarations and statements; visibility
// of a declared name starts immediately after its declaration.
type Block struct {
	Token token.Token
	Inner []Statement
}

func (*Block) statementNode()       {}
func (b *Block) Pos() token.Position { return b.Token.Pos }
func (b *Block) String() string {
	var sb bytes.Buffer
	sb.WriteString("{\n")
	for _, s := range b.Inner {
		sb.WriteString("  " + s.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// If is an if/else statement; Else is nil when absent.
type If struct {
	Token token.Token
	Cond  Expression
	Then  Statement
	Else  Statement
}

func (*If) statementNode()       {}
func (i *If) Pos() token.Position { return i.Token.Pos }
func (i *If) String() string {
	s := "if (" + i.Cond.String() + ") " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

// While is a while loop.
type While struct {
	Token token.Token
	Cond  Expression
	Body  Statement
}

func (*While) statementNode()       {}
func (w *While) Pos() token.Position { return w.Token.Pos }
func (w *While) String() string {
	return "while (" + w.Cond.String() + ") " + w.Body.String()
}

// Return is a `return` statement; Value is nil for a bare `return;`.
type Return struct {
	Token token.Token
	Value Expression // nil if absent
}

func (*Return) statementNode()       {}
func (r *Return) Pos() token.Position { return r.Token.Pos }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// TranslationUnit is one parsed source file: an ordered list of top-level
// declarations.
type TranslationUnit struct {
	Declarations []Statement
}

func (t *TranslationUnit) String() string {
	var sb bytes.Buffer
	for _, d := range t.Declarations {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *TranslationUnit) Pos() token.Position {
	if len(t.Declarations) > 0 {
		return t.Declarations[0].Pos()
	}
	return token.Position{Line: 1, Column: 0}
}
