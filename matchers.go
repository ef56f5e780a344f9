package lexer

import (
	"strconv"
	"unicode/utf8"
)

// A matcherFunc recognizes exactly one lexeme class at the start of code.
// On success it returns the token plus the input remaining after the
// lexeme; on failure it consumes nothing. Matchers never skip leading
// whitespace, that is the lexer's job.
type matcherFunc func(code string) (scanResult, bool)

type scanResult struct {
	tok  Token
	rest string
}

// Tried in order; matchNumber comes after every single-character matcher so
// that a leading digit is never claimed by anything else.
var matchers = []matcherFunc{
	matchRune('(', TokenTypeLParen),
	matchRune(')', TokenTypeRParen),
	matchRune('[', TokenTypeLBracket),
	matchRune(']', TokenTypeRBracket),
	matchRune('<', TokenTypeLAngle),
	matchRune('>', TokenTypeRAngle),
	matchRune('+', TokenTypePlus),
	matchRune('-', TokenTypeMinus),
	matchRune('*', TokenTypeAsterisk),
	matchRune('/', TokenTypeSlash),
	matchRune('!', TokenTypeBang),
	matchRune('_', TokenTypeUnderscore),
	matchRune('\'', TokenTypeApostrophe),
	matchRune('?', TokenTypeQuestion),
	matchRune('=', TokenTypeEquals),
	matchNumber,
}

func matchRune(target rune, typ TokenType) matcherFunc {
	return func(code string) (scanResult, bool) {
		ch, size := utf8.DecodeRuneInString(code)
		if size == 0 || ch != target {
			return scanResult{}, false
		}
		return scanResult{tok: Token{Type: typ}, rest: code[size:]}, true
	}
}

// matchNumber consumes the longest run of decimal digits. A run that does
// not fit in an int32 is a non-match, not a shorter number. A leading sign
// is never part of the run; '+' and '-' lex as their own tokens.
func matchNumber(code string) (scanResult, bool) {
	i := 0
	for i < len(code) && code[i] >= '0' && code[i] <= '9' {
		i++
	}
	if i == 0 {
		return scanResult{}, false
	}
	n, err := strconv.ParseInt(code[:i], 10, 32)
	if err != nil {
		return scanResult{}, false
	}
	return scanResult{tok: Token{Type: TokenTypeNumber, Number: int32(n)}, rest: code[i:]}, true
}
