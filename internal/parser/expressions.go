package parser

import (
	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/token"
)

// Precedence levels from spec.md §4.3's operator table. Lower numbers
// bind tighter; unary +/-/! sit at precedence 2, tighter than every
// binary operator below.
const (
	precUnary        = 2
	precMulDiv       = 3
	precAddSub       = 4
	precRelational   = 6
	precEquality     = 7
	precAssign       = 14
	precComma        = 15
	precCallArgument = precAssign // arguments stop before the comma operator
)

type opInfo struct {
	prec       int
	rightAssoc bool
}

var binaryOps = map[token.SymbolID]opInfo{
	token.Star:      {precMulDiv, false},
	token.Slash:     {precMulDiv, false},
	token.Plus:      {precAddSub, false},
	token.Minus:     {precAddSub, false},
	token.Less:      {precRelational, false},
	token.LessEq:    {precRelational, false},
	token.Greater:   {precRelational, false},
	token.GreaterEq: {precRelational, false},
	token.EqEq:      {precEquality, false},
	token.NotEq:     {precEquality, false},
	token.Assign:    {precAssign, true},
	token.Comma:     {precComma, false},
}

// parseExpr implements precedence climbing: parse a unary operand, then
// repeatedly consume a binary operator whose precedence is <= maxPrec,
// recursing with a tighter bound on the right so that looser/same-level
// (for left-assoc) operators are left for the caller's loop.
func (p *Parser) parseExpr(maxPrec int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t.Kind != token.Symbol {
			break
		}
		info, ok := binaryOps[t.SymbolID]
		if !ok || info.prec > maxPrec {
			break
		}
		opTok := p.advance()

		nextMax := info.prec - 1
		if info.rightAssoc {
			nextMax = info.prec
		}
		right, err := p.parseExpr(nextMax)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: opTok, Left: left, Op: t.SymbolID, Right: right}
	}
	return left, nil
}

// parseUnary handles +, -, ! at precedence 2, parsing right-to-left, and
// otherwise falls through to a primary expression.
func (p *Parser) parseUnary() (ast.Expression, error) {
	t := p.cur()
	if t.Kind == token.Symbol && (t.SymbolID == token.Plus || t.SymbolID == token.Minus || t.SymbolID == token.Not) {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.PrefixUnary{Token: t, Op: t.SymbolID, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles: Identifier( args ), Identifier, Constant, and
// '(' Expression ')'.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	t := p.cur()
	switch {
	case t.Kind == token.Identifier:
		p.advance()
		if p.isSymbol(token.LParen) {
			return p.parseCall(t)
		}
		return &ast.Variable{Token: t, Name: t.Name}, nil

	case t.Kind == token.Constant:
		p.advance()
		return &ast.Constant{Token: t, Value: t.IntValue}, nil

	case t.Kind == token.Symbol && t.SymbolID == token.LParen:
		p.advance()
		inner, err := p.parseExpr(precComma)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Paren{Token: t, Inner: inner}, nil

	default:
		return nil, p.unexpected("an expression")
	}
}

// parseCall parses the argument list of `name(` already consumed up to
// and including '('. Each argument is parsed at precAssign so that a
// top-level comma is treated as an argument separator, not the comma
// operator.
func (p *Parser) parseCall(nameTok token.Token) (ast.Expression, error) {
	if _, err := p.expectSymbol(token.LParen); err != nil {
		return nil, err
	}
	call := &ast.Call{Token: nameTok, Name: nameTok.Name}

	if p.isSymbol(token.RParen) {
		p.advance()
		return call, nil
	}
	for {
		arg, err := p.parseExpr(precCallArgument)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		if p.isSymbol(token.Comma) {
			p.advance()
			continue
		}
		if p.isSymbol(token.RParen) {
			p.advance()
			break
		}
		return nil, p.errorf(diag.ExpectedCommaOrParen, "expected ',' or ')', got %s", p.cur().String())
	}
	return call, nil
}
