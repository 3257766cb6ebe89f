package sceneio

import (
	"strconv"
	"strings"
)

// lexer tokenizes a scene file into whitespace-separated tokens,
// stripping '#' line comments and blank lines, while tracking the
// source line of every token for ParseError reporting.
type lexer struct {
	tokens []string
	lines  []int
	pos    int
}

func newLexer(data string) *lexer {
	l := &lexer{}
	for i, line := range strings.Split(data, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, f := range strings.Fields(line) {
			l.tokens = append(l.tokens, f)
			l.lines = append(l.lines, i+1)
		}
	}
	return l
}

func (l *lexer) atEOF() bool {
	return l.pos >= len(l.tokens)
}

func (l *lexer) line() int {
	if l.pos < len(l.lines) {
		return l.lines[l.pos]
	}
	if len(l.lines) > 0 {
		return l.lines[len(l.lines)-1]
	}
	return 0
}

func (l *lexer) next() (string, error) {
	if l.atEOF() {
		return "", &ParseError{Line: l.line(), Msg: "unexpected end of file"}
	}
	tok := l.tokens[l.pos]
	l.pos++
	return tok, nil
}

func (l *lexer) nextFloat() (float32, error) {
	line := l.line()
	tok, err := l.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Msg: "malformed numeric token " + strconv.Quote(tok)}
	}
	return float32(v), nil
}

func (l *lexer) nextInt() (int, error) {
	line := l.line()
	tok, err := l.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Line: line, Msg: "malformed integer token " + strconv.Quote(tok)}
	}
	return v, nil
}

func (l *lexer) nextUint() (uint32, error) {
	line := l.line()
	tok, err := l.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Msg: "malformed unsigned token " + strconv.Quote(tok)}
	}
	return uint32(v), nil
}
