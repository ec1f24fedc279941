package parser

import (
	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/token"
	"github.com/VVsxmja/rcc/internal/types"
)

// parseType consumes the `int` or `void` keyword.
func (p *Parser) parseType() (types.Type, error) {
	t := p.cur()
	if t.Kind != token.Keyword {
		return 0, p.errorf(diag.ExpectedType, "expected a type, got %s", t.String())
	}
	switch t.KeywordID {
	case token.KwInt:
		p.advance()
		return types.Int, nil
	case token.KwVoid:
		p.advance()
		return types.Void, nil
	default:
		return 0, p.errorf(diag.ExpectedType, "expected a type, got %s", t.String())
	}
}

// parseDeclaration implements:
//
//	Declaration := Type Identifier ( ';'
//	                               | '=' Expression ';'
//	                               | '(' Params? ')' (';' | Block)
//	                               )
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	startTok := p.cur()
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	if p.isSymbol(token.LParen) {
		return p.parseFunctionDecl(startTok, typ, nameTok.Name)
	}

	decl := &ast.VariableDecl{Token: startTok, Type: typ, Name: nameTok.Name}
	if p.isSymbol(token.Assign) {
		p.advance()
		init, err := p.parseExpr(precComma)
		if err != nil {
			return nil, err
		}
		decl.Initializer = init
	}
	if _, err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) expectSemicolon() (token.Token, error) {
	if !p.isSymbol(token.Semicolon) {
		return token.Token{}, p.errorf(diag.ExpectedSemicolon, "expected ';', got %s", p.cur().String())
	}
	return p.advance(), nil
}

// parseFunctionDecl parses the tail of a function declaration or
// definition, starting right after the name, with the current token '('.
func (p *Parser) parseFunctionDecl(startTok token.Token, retType types.Type, name string) (ast.Statement, error) {
	if _, err := p.expectSymbol(token.LParen); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.RParen); err != nil {
		return nil, err
	}

	decl := &ast.FunctionDecl{Token: startTok, ReturnType: retType, Name: name, Params: params}

	if p.isSymbol(token.Semicolon) {
		p.advance()
		return decl, nil
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	decl.Body = body
	return decl, nil
}

// parseParams implements:
//
//	Params := 'void'
//	        | ParameterDefinition (',' ParameterDefinition)*
//
// An empty list (immediate ')') is also accepted.
func (p *Parser) parseParams() ([]ast.ParameterDefinition, error) {
	if p.isSymbol(token.RParen) {
		return nil, nil
	}
	if p.isKeyword(token.KwVoid) && p.peekAt(1).Kind == token.Symbol && p.peekAt(1).SymbolID == token.RParen {
		p.advance()
		return nil, nil
	}

	var params []ast.ParameterDefinition
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if typ == types.Void {
			return nil, p.errorf(diag.ExpectedType, "parameter type must not be void")
		}
		nameTok, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.ParameterDefinition{Type: typ, Name: nameTok.Name})

		if p.isSymbol(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return params, nil
}

// parseBlock implements: Block := '{' (Declaration | Statement)* '}'
func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expectSymbol(token.LBrace)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Token: open}
	for !p.isSymbol(token.RBrace) {
		if p.cur().Kind == token.End {
			return nil, p.unexpected("'}'")
		}
		inner, err := p.parseBlockInner()
		if err != nil {
			return nil, err
		}
		block.Inner = append(block.Inner, inner)
	}
	p.advance() // '}'
	return block, nil
}

// parseBlockInner distinguishes a nested Declaration from a Statement by
// one token of lookahead: a type keyword starts a declaration.
func (p *Parser) parseBlockInner() (ast.Statement, error) {
	if p.isKeyword(token.KwInt) || p.isKeyword(token.KwVoid) {
		return p.parseDeclaration()
	}
	return p.parseStatement()
}
