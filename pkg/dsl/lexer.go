package dsl

import (
	"io"
	"strings"
)

type lexType int

const (
	tEof lexType = iota + 1
	tErr
	tIdentifier
	tColon
	tComma
	tLbracket
	tRbracket
)

// token is a single lexical element of a key definition line.
// Off is the rune offset of the token's first character within the line.
type token struct {
	Off  int
	Text string
	Type lexType
}

type lexer struct {
	*lexBuf
	tokens chan token
}

func lexString(text string) *lexer {
	r := strings.NewReader(text)
	// The whole line is in hand, so the ring is sized to hold it. A single
	// token can span the entire line (one long identifier), and a ring
	// smaller than the token overwrites its oldest runes.
	return &lexer{tokens: make(chan token), lexBuf: newLexBufSize(r, len(text)+1)}
}

func (l *lexer) stream() *tokenStream {
	return newTokenStream(l.tokens)
}

func (l *lexer) postToken(t lexType) {
	text := l.consume()
	l.tokens <- token{l.off - len(text), text, t}
}

func (l *lexer) handleLexErr(err error) {
	if err == io.EOF {
		l.tokens <- token{Off: l.off, Text: "", Type: tEof}
		return
	}
	l.tokens <- token{Off: l.off, Text: err.Error(), Type: tErr}
}

// isIdentRune reports whether c may appear in an identifier. Key names,
// function names, and literal arguments all share this charset.
func isIdentRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}

// lex tokenizes the line until EOF or the first character that cannot start a
// token. Whitespace is not part of the grammar; the caller trims the line
// before lexing, so any remaining whitespace is reported as an error token.
func (l *lexer) lex() {
	defer close(l.tokens)
	for {
		c, err := l.read()
		if err != nil {
			l.handleLexErr(err)
			return
		}
		switch {
		case c == ':':
			l.postToken(tColon)
		case c == ',':
			l.postToken(tComma)
		case c == '[':
			l.postToken(tLbracket)
		case c == ']':
			l.postToken(tRbracket)
		case isIdentRune(c):
			if err := l.readIdentifier(); err != nil {
				l.handleLexErr(err)
				return
			}
		default:
			l.unread()
			l.discard()
			l.tokens <- token{Off: l.off, Text: string(c), Type: tErr}
			return
		}
	}
}

func (l *lexer) readIdentifier() error {
	for {
		c, err := l.read()
		if err != nil {
			if err == io.EOF {
				l.postToken(tIdentifier)
			}
			return err
		}
		if !isIdentRune(c) {
			l.unread()
			l.postToken(tIdentifier)
			return nil
		}
	}
}
