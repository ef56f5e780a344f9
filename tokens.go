package lexer

import "strconv"

type TokenType int

const (
	TokenTypeLParen TokenType = iota
	TokenTypeRParen
	TokenTypeLBracket
	TokenTypeRBracket
	TokenTypeLAngle
	TokenTypeRAngle
	TokenTypePlus
	TokenTypeMinus
	TokenTypeAsterisk
	TokenTypeSlash
	TokenTypeBang
	TokenTypeUnderscore
	TokenTypeApostrophe
	TokenTypeQuestion
	TokenTypeEquals
	TokenTypeNumber
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeLParen:     "lparen",
	TokenTypeRParen:     "rparen",
	TokenTypeLBracket:   "lbracket",
	TokenTypeRBracket:   "rbracket",
	TokenTypeLAngle:     "langle",
	TokenTypeRAngle:     "rangle",
	TokenTypePlus:       "plus",
	TokenTypeMinus:      "minus",
	TokenTypeAsterisk:   "asterisk",
	TokenTypeSlash:      "slash",
	TokenTypeBang:       "bang",
	TokenTypeUnderscore: "underscore",
	TokenTypeApostrophe: "apostrophe",
	TokenTypeQuestion:   "question",
	TokenTypeEquals:     "equals",
	TokenTypeNumber:     "number",
}

// Token is a single classified unit of source text. Number is only
// meaningful when Type is TokenTypeNumber.
type Token struct {
	Type   TokenType
	Number int32
}

func (t Token) String() string {
	if t.Type == TokenTypeNumber {
		return "number(" + strconv.FormatInt(int64(t.Number), 10) + ")"
	}
	return tokenTypeNames[t.Type]
}

// TokenReader is the surface a parser would consume: a finite token
// sequence with one token of lookahead.
type TokenReader interface {
	Next() (tok Token, ok bool)
	Peek() (tok Token, ok bool)
}
