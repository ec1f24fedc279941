package lexer

import (
	"testing"

	"github.com/VVsxmja/rcc/internal/token"
)

func TestExtractTokensWorkedExample(t *testing.T) {
	toks, err := ExtractTokens("int x = 1 + 2;")
	if err != nil {
		t.Fatalf("ExtractTokens: unexpected error: %v", err)
	}

	want := []token.Token{
		{Kind: token.Keyword, KeywordID: token.KwInt},
		{Kind: token.Identifier, Name: "x"},
		{Kind: token.Symbol, SymbolID: token.Assign},
		{Kind: token.Constant, IntValue: 1},
		{Kind: token.Symbol, SymbolID: token.Plus},
		{Kind: token.Constant, IntValue: 2},
		{Kind: token.Symbol, SymbolID: token.Semicolon},
		{Kind: token.End},
	}

	if len(toks) != len(want) {
		t.Fatalf("ExtractTokens() = %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		got := toks[i]
		if got.Kind != w.Kind || got.Name != w.Name || got.IntValue != w.IntValue ||
			got.SymbolID != w.SymbolID || got.KeywordID != w.KeywordID {
			t.Errorf("token[%d] = %s, want %s", i, got, w)
		}
	}
}

func TestExtractTokensBooleanLiterals(t *testing.T) {
	toks, err := ExtractTokens("true false")
	if err != nil {
		t.Fatalf("ExtractTokens: unexpected error: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("ExtractTokens() = %d tokens, want 3", len(toks))
	}
	if toks[0].Kind != token.Constant || toks[0].IntValue != 1 {
		t.Errorf("toks[0] = %s, want Constant(1)", toks[0])
	}
	if toks[1].Kind != token.Constant || toks[1].IntValue != 0 {
		t.Errorf("toks[1] = %s, want Constant(0)", toks[1])
	}
}

func TestExtractTokensMalformedIdentifier(t *testing.T) {
	_, err := ExtractTokens("1a")
	if err == nil {
		t.Fatalf("expected a MalformedIdentifierError")
	}
	if _, ok := err.(*MalformedIdentifierError); !ok {
		t.Fatalf("expected *MalformedIdentifierError, got %T", err)
	}
}

func TestExtractTokensTracksLinesAndColumns(t *testing.T) {
	toks, err := ExtractTokens("int\nx;")
	if err != nil {
		t.Fatalf("ExtractTokens: unexpected error: %v", err)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 0 {
		t.Errorf("toks[1].Pos = %s, want 2:0", toks[1].Pos)
	}
}
