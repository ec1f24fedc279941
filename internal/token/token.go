package token

import "strconv"

// Kind distinguishes the five tagged shapes a Token can take.
type Kind int

const (
	Identifier Kind = iota
	Constant
	Symbol
	Keyword
	End
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Constant:
		return "Constant"
	case Symbol:
		return "Symbol"
	case Keyword:
		return "Keyword"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// SymbolID enumerates the fixed set of symbols recognized by the trie.
type SymbolID int

const (
	LBrace SymbolID = iota
	RBrace
	LParen
	RParen
	Plus
	Minus
	Star
	Slash
	Percent
	EqEq
	NotEq
	Less
	LessEq
	Greater
	GreaterEq
	OrOr
	AndAnd
	Not
	Assign
	Comma
	Semicolon
)

var symbolText = map[SymbolID]string{
	LBrace:    "{",
	RBrace:    "}",
	LParen:    "(",
	RParen:    ")",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
	EqEq:      "==",
	NotEq:     "!=",
	Less:      "<",
	LessEq:    "<=",
	Greater:   ">",
	GreaterEq: ">=",
	OrOr:      "||",
	AndAnd:    "&&",
	Not:       "!",
	Assign:    "=",
	Comma:     ",",
	Semicolon: ";",
}

func (s SymbolID) String() string {
	if text, ok := symbolText[s]; ok {
		return text
	}
	return "?"
}

// Symbols is the canonical (pattern, id) table the trie is built from.
var Symbols = []struct {
	Pattern string
	ID      SymbolID
}{
	{"{", LBrace},
	{"}", RBrace},
	{"(", LParen},
	{")", RParen},
	{"==", EqEq},
	{"!=", NotEq},
	{"<=", LessEq},
	{"<", Less},
	{">=", GreaterEq},
	{">", Greater},
	{"||", OrOr},
	{"&&", AndAnd},
	{"!", Not},
	{"=", Assign},
	{",", Comma},
	{";", Semicolon},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"%", Percent},
}

// KeywordID enumerates the fixed set of keywords recognized by the trie.
type KeywordID int

const (
	KwInt KeywordID = iota
	KwVoid
	KwIf
	KwElse
	KwWhile
	KwReturn
)

var keywordText = map[KeywordID]string{
	KwInt:    "int",
	KwVoid:   "void",
	KwIf:     "if",
	KwElse:   "else",
	KwWhile:  "while",
	KwReturn: "return",
}

func (k KeywordID) String() string {
	if text, ok := keywordText[k]; ok {
		return text
	}
	return "?"
}

// Keywords is the canonical (pattern, id) table the trie is built from.
var Keywords = []struct {
	Pattern string
	ID      KeywordID
}{
	{"int", KwInt},
	{"void", KwVoid},
	{"if", KwIf},
	{"else", KwElse},
	{"while", KwWhile},
	{"return", KwReturn},
}

// Token is an immutable, value-comparable tagged token.
//
// Only the fields relevant to its Kind are meaningful: a Constant token
// carries IntValue, a Symbol token carries SymbolID, a Keyword token
// carries KeywordID, an Identifier token carries Name. End carries none.
type Token struct {
	Kind      Kind
	Name      string
	IntValue  int32
	SymbolID  SymbolID
	KeywordID KeywordID
	Pos       Position
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier:
		return "Identifier(" + t.Name + ")"
	case Constant:
		return "Constant(" + strconv.FormatInt(int64(t.IntValue), 10) + ")"
	case Symbol:
		return "Symbol(" + t.SymbolID.String() + ")"
	case Keyword:
		return "Keyword(" + t.KeywordID.String() + ")"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}
