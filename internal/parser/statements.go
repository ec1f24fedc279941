package parser

import (
	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/token"
)

// parseStatement implements:
//
//	Statement := ';'
//	           | 'if' '(' Expression ')' Statement ('else' Statement)?
//	           | 'while' '(' Expression ')' Statement
//	           | 'return' Expression? ';'
//	           | Block
//	           | Expression ';'
func (p *Parser) parseStatement() (ast.Statement, error) {
	t := p.cur()
	switch {
	case t.Kind == token.Symbol && t.SymbolID == token.Semicolon:
		p.advance()
		return &ast.Empty{Token: t}, nil

	case t.Kind == token.Symbol && t.SymbolID == token.LBrace:
		return p.parseBlock()

	case t.Kind == token.Keyword && t.KeywordID == token.KwIf:
		return p.parseIf()

	case t.Kind == token.Keyword && t.KeywordID == token.KwWhile:
		return p.parseWhile()

	case t.Kind == token.Keyword && t.KeywordID == token.KwReturn:
		return p.parseReturn()

	default:
		expr, err := p.parseExpr(precComma)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: t, Expr: expr}, nil
	}
}

func (p *Parser) parseIf() (ast.Statement, error) {
	ifTok, err := p.expectKeyword(token.KwIf)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precComma)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Token: ifTok, Cond: cond, Then: then}
	if p.isKeyword(token.KwElse) {
		p.advance()
		elseStmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		node.Else = elseStmt
	}
	return node, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	whileTok, err := p.expectKeyword(token.KwWhile)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precComma)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: whileTok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	retTok, err := p.expectKeyword(token.KwReturn)
	if err != nil {
		return nil, err
	}
	node := &ast.Return{Token: retTok}
	if !p.isSymbol(token.Semicolon) {
		value, err := p.parseExpr(precComma)
		if err != nil {
			return nil, err
		}
		node.Value = value
	}
	if _, err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return node, nil
}
