package parser

import (
	"testing"

	"github.com/VVsxmja/rcc/internal/lexer"
)

func mustParseExpr(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.ExtractTokens(src)
	if err != nil {
		t.Fatalf("lexer.ExtractTokens(%q): %v", src, err)
	}
	p := New(toks)
	expr, err := p.parseExpr(precComma)
	if err != nil {
		t.Fatalf("parseExpr(%q): %v", src, err)
	}
	return expr.String()
}

func TestParseExprPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	if got, want := mustParseExpr(t, "a + b * c"), "(a + (b * c))"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "a + b * c", got, want)
	}
}

func TestParseExprAssignIsRightAssociative(t *testing.T) {
	if got, want := mustParseExpr(t, "a = b = c"), "(a = (b = c))"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "a = b = c", got, want)
	}
}

func TestParseExprRelationalBindsTighterThanEquality(t *testing.T) {
	if got, want := mustParseExpr(t, "a < b == c"), "((a < b) == c)"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "a < b == c", got, want)
	}
}

func TestParseExprAddIsLeftAssociative(t *testing.T) {
	if got, want := mustParseExpr(t, "a - b - c"), "((a - b) - c)"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "a - b - c", got, want)
	}
}

func TestParseExprUnaryBindsTighterThanBinary(t *testing.T) {
	if got, want := mustParseExpr(t, "-a + b"), "(-a + b)"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "-a + b", got, want)
	}
}

func TestParseExprParenOverridesPrecedence(t *testing.T) {
	if got, want := mustParseExpr(t, "(a + b) * c"), "((a + b) * c)"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "(a + b) * c", got, want)
	}
}

func TestParseExprCallWithArguments(t *testing.T) {
	if got, want := mustParseExpr(t, "f(a, b + c)"), "f(a, (b + c))"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "f(a, b + c)", got, want)
	}
}

func TestParseExprCommaIsLowestPrecedence(t *testing.T) {
	if got, want := mustParseExpr(t, "a = b, c"), "((a = b) , c)"; got != want {
		t.Errorf("parseExpr(%q) = %q, want %q", "a = b, c", got, want)
	}
}

func TestParseExprUnexpectedTokenReportsDiagnostic(t *testing.T) {
	toks, err := lexer.ExtractTokens("+")
	if err != nil {
		t.Fatalf("lexer.ExtractTokens: %v", err)
	}
	if _, err := New(toks).parseExpr(precComma); err == nil {
		t.Fatalf("expected an error parsing a bare '+'")
	}
}
