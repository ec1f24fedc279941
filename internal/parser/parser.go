// Package parser implements the recursive-descent, precedence-climbing
// parser over the token sequence produced by package lexer.
//
// Key patterns (mirroring the teacher's parser.go header):
//   - Token window: an index into an immutable token slice, never rewound
//     past an already-consumed token on success.
//   - Lookahead: at most two tokens (peekAt(0), peekAt(1)), needed for the
//     `void`-only parameter list and the function-vs-variable
//     disambiguation after `Type Identifier`.
//   - Single diagnostic: the first structural mismatch returns immediately
//     as a *diag.Error; there is no error-recovery/synchronize step.
package parser

import (
	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/token"
)

// Parser holds the token window and optional source text (used only to
// render a caret line in diagnostics).
type Parser struct {
	toks   []token.Token
	pos    int
	source string
	file   string
}

// New creates a Parser over a complete token sequence (as produced by
// lexer.ExtractTokens, ending in token.End).
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// SetSource attaches source text and a file name so diagnostics can show
// the offending line.
func (p *Parser) SetSource(source, file string) *Parser {
	p.source = source
	p.file = file
	return p
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1] // End
	}
	return p.toks[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.End {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(kind diag.Kind, format string, args ...any) error {
	return diag.New(kind, p.cur().Pos, format, args...).WithSource(p.source, p.file)
}

func (p *Parser) unexpected(want string) error {
	return p.errorf(diag.UnexpectedToken, "expected %s, got %s", want, p.cur().String())
}

func (p *Parser) expectSymbol(id token.SymbolID) (token.Token, error) {
	t := p.cur()
	if t.Kind != token.Symbol || t.SymbolID != id {
		return token.Token{}, p.unexpected("'" + id.String() + "'")
	}
	return p.advance(), nil
}

func (p *Parser) expectKeyword(id token.KeywordID) (token.Token, error) {
	t := p.cur()
	if t.Kind != token.Keyword || t.KeywordID != id {
		return token.Token{}, p.unexpected("'" + id.String() + "'")
	}
	return p.advance(), nil
}

func (p *Parser) expectIdentifier() (token.Token, error) {
	t := p.cur()
	if t.Kind != token.Identifier {
		return token.Token{}, p.errorf(diag.ExpectedIdentifier, "expected identifier, got %s", t.String())
	}
	return p.advance(), nil
}

func (p *Parser) isSymbol(id token.SymbolID) bool {
	t := p.cur()
	return t.Kind == token.Symbol && t.SymbolID == id
}

func (p *Parser) isKeyword(id token.KeywordID) bool {
	t := p.cur()
	return t.Kind == token.Keyword && t.KeywordID == id
}

// ParseTranslationUnit parses the whole token sequence: TranslationUnit :=
// Declaration* End.
func (p *Parser) ParseTranslationUnit() (*ast.TranslationUnit, error) {
	tu := &ast.TranslationUnit{}
	for p.cur().Kind != token.End {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		tu.Declarations = append(tu.Declarations, decl)
	}
	return tu, nil
}
