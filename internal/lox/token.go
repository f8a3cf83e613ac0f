package lox

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Span    Span
	Lexeme  string
	Literal interface{}
}

// NewToken creates a new token
func NewToken(typ TokenType, span Span, lexeme string, literal interface{}) *Token {
	return &Token{typ, span, lexeme, literal}
}

func (t *Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s %q", t.Span, t.Typ, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %q %v", t.Span, t.Typ, t.Lexeme, t.Literal)
}

var keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"fun":    TokenFun,
	"for":    TokenFor,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// TokenType is the kind of a token
type TokenType uint

const (
	// Single-character tokens
	TokenLeftParen TokenType = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// One or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// Literals
	TokenIdentifier
	TokenString
	TokenNumber

	// Keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF
)

// precedence returns the binding power of a binary operator token. The second
// result is false for tokens that are not binary operators.
func (tt TokenType) precedence() (int, bool) {
	switch tt {
	case TokenStar, TokenSlash:
		return 4, true
	case TokenMinus, TokenPlus:
		return 3, true
	case TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual:
		return 2, true
	case TokenEqualEqual, TokenBangEqual:
		return 1, true
	}
	return 0, false
}

func (tt TokenType) String() string {
	switch tt {
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenComma:
		return ","
	case TokenDot:
		return "."
	case TokenMinus:
		return "-"
	case TokenPlus:
		return "+"
	case TokenSemicolon:
		return ";"
	case TokenSlash:
		return "/"
	case TokenStar:
		return "*"
	case TokenBang:
		return "!"
	case TokenBangEqual:
		return "!="
	case TokenEqual:
		return "="
	case TokenEqualEqual:
		return "=="
	case TokenGreater:
		return ">"
	case TokenGreaterEqual:
		return ">="
	case TokenLess:
		return "<"
	case TokenLessEqual:
		return "<="
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenAnd:
		return "AND"
	case TokenClass:
		return "CLASS"
	case TokenElse:
		return "ELSE"
	case TokenFalse:
		return "FALSE"
	case TokenFun:
		return "FUN"
	case TokenFor:
		return "FOR"
	case TokenIf:
		return "IF"
	case TokenNil:
		return "NIL"
	case TokenOr:
		return "OR"
	case TokenPrint:
		return "PRINT"
	case TokenReturn:
		return "RETURN"
	case TokenSuper:
		return "SUPER"
	case TokenThis:
		return "THIS"
	case TokenTrue:
		return "TRUE"
	case TokenVar:
		return "VAR"
	case TokenWhile:
		return "WHILE"
	case TokenEOF:
		return "EOF"
	}
	return ""
}
