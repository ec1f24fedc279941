// Package lexer implements the tokenizer: longest-match via a trie, with a
// fallback identifier/constant classifier for anything the trie does not
// recognize.
package lexer

import (
	"fmt"
	"sync"

	"github.com/VVsxmja/rcc/internal/rtrace"
	"github.com/VVsxmja/rcc/internal/token"
)

var (
	defaultMatcherOnce sync.Once
	defaultMatcher     *token.Matcher
)

// matcher returns the process-wide trie singleton, building it lazily on
// first use. Build failure (a *token.DuplicatePatternError) is a bug in the
// trie specification, not a user error, so it panics rather than returning
// an error — matching spec.md §5's "panics on DuplicatePattern".
func matcher() *token.Matcher {
	defaultMatcherOnce.Do(func() {
		defaultMatcher = token.MustNewMatcher(token.DefaultEntries())
	})
	return defaultMatcher
}

// MalformedIdentifierError is returned when the fallback classifier's
// buffer starts with a digit but does not parse as a valid signed 32-bit
// integer constant.
type MalformedIdentifierError struct {
	Text string
	Pos  token.Position
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("%s: malformed identifier or integer constant %q", e.Pos, e.Text)
}

// ExtractTokens tokenizes text into a sequence terminated by exactly one
// End token.
func ExtractTokens(text string) ([]token.Token, error) {
	s := &scanner{text: text, line: 1, column: 0}
	var toks []token.Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.End {
			return toks, nil
		}
	}
}

type scanner struct {
	text   string
	offset int
	line   int
	column int
}

func (s *scanner) pos() token.Position {
	return token.Position{Line: s.line, Column: s.column, Offset: s.offset}
}

// advance moves the cursor forward by n bytes, tracking line/column; the
// column counter resets to zero on '\n' as spec.md §4.2 step 1 requires.
func (s *scanner) advance(n int) {
	for i := 0; i < n; i++ {
		if s.text[s.offset] == '\n' {
			s.line++
			s.column = 0
		} else {
			s.column++
		}
		s.offset++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) skipWhitespace() {
	for s.offset < len(s.text) && isSpace(s.text[s.offset]) {
		s.advance(1)
	}
}

func (s *scanner) next() (token.Token, error) {
	s.skipWhitespace()
	if s.offset >= len(s.text) {
		return token.Token{Kind: token.End, Pos: s.pos()}, nil
	}

	start := s.pos()
	rest := s.text[s.offset:]

	if v, length, ok := matcher().Match(rest); ok {
		rtrace.Tracef(2, "lexer: trie match %q -> %s at %s", rest[:length], v.Kind, start)
		s.advance(length)
		return token.Token{
			Kind:      v.Kind,
			IntValue:  v.IntValue,
			SymbolID:  v.SymbolID,
			KeywordID: v.KeywordID,
			Pos:       start,
		}, nil
	}

	return s.scanFallback(start)
}

// scanFallback collects the maximal prefix of non-whitespace characters
// that does not contain any trie-recognizable symbol, then classifies it
// as a Constant or an Identifier per spec.md §4.2 step 4.
func (s *scanner) scanFallback(start token.Position) (token.Token, error) {
	begin := s.offset
	for s.offset < len(s.text) {
		c := s.text[s.offset]
		if isSpace(c) {
			break
		}
		if _, _, ok := matcher().Match(s.text[s.offset:]); ok {
			break
		}
		s.advance(1)
	}
	buf := s.text[begin:s.offset]

	if v, ok := parseInt32(buf); ok {
		return token.Token{Kind: token.Constant, IntValue: v, Pos: start}, nil
	}
	if len(buf) > 0 && isDigit(buf[0]) {
		return token.Token{}, &MalformedIdentifierError{Text: buf, Pos: start}
	}
	return token.Token{Kind: token.Identifier, Name: buf, Pos: start}, nil
}

// parseInt32 parses buf as an unsigned-looking base-10 literal (the '+'
// and '-' symbols are always trie-recognizable, so a fallback buffer never
// contains a leading sign) into a signed 32-bit value, rejecting anything
// that does not fit. "1a" fails here and falls through to identifier
// validation, which rejects it as malformed since it starts with a digit.
func parseInt32(buf string) (int32, bool) {
	if buf == "" {
		return 0, false
	}
	var v int64
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if !isDigit(c) {
			return 0, false
		}
		v = v*10 + int64(c-'0')
		if v > int32max {
			return 0, false
		}
	}
	return int32(v), true
}

const int32max = 1<<31 - 1
