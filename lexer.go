package lexer

import (
	"strings"
	"unicode"
)

// Lexer turns a source string into a lazy sequence of tokens with one token
// of lookahead. An instance is single-consumer and not restartable;
// rescanning means constructing a new Lexer over the text.
type Lexer struct {
	rest      string
	lookahead *Token
}

var _ TokenReader = (*Lexer)(nil)

// New returns a lexer positioned before the first token of code. The string
// is never copied; rest is re-sliced in place as tokens are consumed.
func New(code string) *Lexer {
	l := &Lexer{rest: code}
	l.advance()
	return l
}

// Next returns the current lookahead token and advances by one token. Once
// scanning stops, whether at end of input or at an unrecognized character,
// every later call reports ok == false.
func (l *Lexer) Next() (Token, bool) {
	if l.lookahead == nil {
		return Token{}, false
	}
	tok := *l.lookahead
	l.advance()
	return tok, true
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, bool) {
	if l.lookahead == nil {
		return Token{}, false
	}
	return *l.lookahead, true
}

func (l *Lexer) advance() {
	res, ok := scanOne(l.rest)
	if !ok {
		l.lookahead = nil
		l.rest = ""
		return
	}
	tok := res.tok
	l.lookahead = &tok
	l.rest = res.rest
}

// scanOne skips leading whitespace and applies the first matcher that
// accepts the input. Exhausted input and unrecognized input both come back
// as ok == false; callers cannot tell the two apart.
func scanOne(code string) (scanResult, bool) {
	code = strings.TrimLeftFunc(code, unicode.IsSpace)
	for _, match := range matchers {
		if res, ok := match(code); ok {
			return res, true
		}
	}
	return scanResult{}, false
}
