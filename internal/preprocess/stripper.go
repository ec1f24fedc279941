// Package preprocess implements the comment-stripping pre-pass consumed by
// the rest of the pipeline: spec.md §4.1 specifies it only by contract, but
// gives a full six-state algorithm, so it is implemented here rather than
// left as an external collaborator.
package preprocess

import "fmt"

// UnterminatedCommentError is returned when a `/*` has no matching `*/`
// before end-of-input.
type UnterminatedCommentError struct {
	Pos struct{ Line, Column int }
}

func (e *UnterminatedCommentError) Error() string {
	return fmt.Sprintf("unterminated block comment starting at %d:%d", e.Pos.Line, e.Pos.Column)
}

type state int

const (
	notComment state = iota
	slash
	lineInner
	lineEnd
	blockInner
	blockInnerStar
)

// Strip removes `//`-to-end-of-line and `/*...*/` regions from text.
// Whitespace inside a removed region is not preserved; newlines inside a
// `//` region are preserved (the line break itself is not part of the
// comment), newlines inside a `/*...*/` region are discarded.
func Strip(text string) (string, error) {
	var out []byte
	st := notComment
	line, col := 1, 0
	blockStartLine, blockStartCol := 0, 0

	advance := func(c byte) {
		if c == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch st {
		case notComment, lineEnd:
			// lineEnd is reached the instant a line comment's terminating
			// '\n' has been emitted; the character after it is ordinary
			// text, so it is dispatched identically to notComment.
			if c == '/' {
				st = slash
			} else {
				out = append(out, c)
				st = notComment
			}
		case slash:
			switch c {
			case '/':
				st = lineInner
			case '*':
				st = blockInner
				blockStartLine, blockStartCol = line, col-1
			default:
				out = append(out, '/', c)
				st = notComment
			}
		case lineInner:
			if c == '\n' {
				out = append(out, '\n')
				st = lineEnd
			}
			// else: discard character, stay in lineInner
		case blockInner:
			if c == '*' {
				st = blockInnerStar
			}
		case blockInnerStar:
			switch c {
			case '/':
				st = notComment
			case '*':
				st = blockInnerStar
			default:
				st = blockInner
			}
		}
		advance(c)
	}

	switch st {
	case slash:
		out = append(out, '/')
	case blockInner, blockInnerStar:
		err := &UnterminatedCommentError{}
		err.Pos.Line, err.Pos.Column = blockStartLine, blockStartCol
		return "", err
	}

	return string(out), nil
}
