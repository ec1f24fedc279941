package token

import "testing"

func TestMatcherMaximalMunch(t *testing.T) {
	m := MustNewMatcher(DefaultEntries())

	tests := []struct {
		text   string
		wantID SymbolID
		wantLn int
	}{
		{"==x", EqEq, 2},
		{"=x", Assign, 1},
		{"<=x", LessEq, 2},
		{"<x", Less, 1},
		{"!=x", NotEq, 2},
		{"!x", Not, 1},
	}
	for _, tt := range tests {
		v, n, ok := m.Match(tt.text)
		if !ok {
			t.Fatalf("Match(%q): no match", tt.text)
		}
		if v.SymbolID != tt.wantID || n != tt.wantLn {
			t.Errorf("Match(%q) = (%v, %d), want (%v, %d)", tt.text, v.SymbolID, n, tt.wantID, tt.wantLn)
		}
	}
}

func TestMatcherKeywordsAndBooleans(t *testing.T) {
	m := MustNewMatcher(DefaultEntries())

	v, n, ok := m.Match("while (")
	if !ok || v.KeywordID != KwWhile || n != len("while") {
		t.Fatalf("Match(%q) = (%v, %d, %v), want KwWhile/5/true", "while (", v, n, ok)
	}

	v, n, ok = m.Match("true;")
	if !ok || v.Kind != Constant || v.IntValue != 1 || n != len("true") {
		t.Fatalf("Match(%q) = (%v, %d, %v), want Constant(1)/4/true", "true;", v, n, ok)
	}

	v, n, ok = m.Match("false)")
	if !ok || v.Kind != Constant || v.IntValue != 0 || n != len("false") {
		t.Fatalf("Match(%q) = (%v, %d, %v), want Constant(0)/5/true", "false)", v, n, ok)
	}
}

func TestMatcherNoMatch(t *testing.T) {
	m := MustNewMatcher(DefaultEntries())
	if _, _, ok := m.Match("x + 1"); ok {
		t.Fatalf("expected no match for an identifier-leading input")
	}
}

func TestNewMatcherRejectsDuplicates(t *testing.T) {
	entries := []struct {
		Pattern string
		Value   Value
	}{
		{"a", Value{Kind: Symbol, SymbolID: Plus}},
		{"a", Value{Kind: Symbol, SymbolID: Minus}},
	}
	if _, err := NewMatcher(entries); err == nil {
		t.Fatalf("expected a DuplicatePatternError")
	}
}
