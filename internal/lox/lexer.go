package lox

import (
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// Lexer turns the source text into tokens. Tokens are produced one at a time
// by Next, so the parser can pull them lazily.
type Lexer struct {
	source string
	start  Loc
	cur    Loc
	err    error
	logger *slog.Logger
}

// NewLexer creates a lexer for the given source. A nil logger discards all
// records.
func NewLexer(source string, logger *slog.Logger) *Lexer {
	if logger == nil {
		logger = discardLogger()
	}
	lexer := new(Lexer)
	lexer.source = source
	lexer.cur = Loc{Idx: 0, Row: 1, Col: 1}
	lexer.start = lexer.cur
	lexer.logger = logger
	return lexer
}

// Next returns the next token of the source. Once the input is exhausted, it
// keeps returning an EOF token. Once it has failed, it keeps returning the same
// error.
func (lexer *Lexer) Next() (*Token, error) {
	if lexer.err != nil {
		return nil, lexer.err
	}
	tok, err := lexer.next()
	if err != nil {
		lexer.err = err
		return nil, err
	}
	lexer.logger.Debug("Scanned token",
		"type", tok.Typ, "span", tok.Span, "lexeme", tok.Lexeme)
	return tok, nil
}

// Scan reads the source and collects all the tokens that were found, the last
// one being EOF.
func (lexer *Lexer) Scan() ([]*Token, error) {
	tokens := make([]*Token, 0)
	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Typ == TokenEOF {
			return tokens, nil
		}
	}
}

func (lexer *Lexer) next() (*Token, error) {
	if err := lexer.skip(); err != nil {
		return nil, err
	}
	lexer.start = lexer.cur
	if !lexer.hasNext() {
		return lexer.token(TokenEOF, nil), nil
	}

	switch r := lexer.advance(); r {
	// Single character tokens
	case '(':
		return lexer.token(TokenLeftParen, nil), nil
	case ')':
		return lexer.token(TokenRightParen, nil), nil
	case '{':
		return lexer.token(TokenLeftBrace, nil), nil
	case '}':
		return lexer.token(TokenRightBrace, nil), nil
	case ',':
		return lexer.token(TokenComma, nil), nil
	case '-':
		return lexer.token(TokenMinus, nil), nil
	case '+':
		return lexer.token(TokenPlus, nil), nil
	case ';':
		return lexer.token(TokenSemicolon, nil), nil
	case '*':
		return lexer.token(TokenStar, nil), nil
	// Comments were consumed by skip
	case '/':
		return lexer.token(TokenSlash, nil), nil
	case '.':
		if isDigit(lexer.peek()) {
			return lexer.scanNumber(true)
		}
		return lexer.token(TokenDot, nil), nil
	// Double character tokens
	case '!':
		return lexer.either('=', TokenBangEqual, TokenBang), nil
	case '=':
		return lexer.either('=', TokenEqualEqual, TokenEqual), nil
	case '<':
		return lexer.either('=', TokenLessEqual, TokenLess), nil
	case '>':
		return lexer.either('=', TokenGreaterEqual, TokenGreater), nil
	// Literals
	case '"':
		return lexer.scanString()
	default:
		if isDigit(r) {
			return lexer.scanNumber(false)
		}
		if isIdentHead(r) {
			return lexer.scanIdentifier(), nil
		}
		err := newLexError(UnexpectedChar, lexer.span())
		err.Char = r
		return nil, err
	}
}

// skip consumes whitespaces, line comments and block comments. Block comments
// nest, each "/*" must be closed by its own "*/".
func (lexer *Lexer) skip() error {
	for lexer.hasNext() {
		switch r := lexer.peek(); {
		case isWhitespace(r):
			lexer.advance()
		case r == '/' && lexer.peekNext() == '/':
			// keep the '\n', it is consumed as a whitespace
			for lexer.hasNext() && lexer.peek() != '\n' {
				lexer.advance()
			}
		case r == '/' && lexer.peekNext() == '*':
			if err := lexer.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (lexer *Lexer) skipBlockComment() error {
	lo := lexer.cur
	lexer.advance()
	lexer.advance()
	depth := 0
	for lexer.hasNext() {
		switch {
		case lexer.peek() == '/' && lexer.peekNext() == '*':
			lexer.advance()
			lexer.advance()
			depth++
		case lexer.peek() == '*' && lexer.peekNext() == '/':
			lexer.advance()
			lexer.advance()
			if depth == 0 {
				return nil
			}
			depth--
		default:
			lexer.advance()
		}
	}
	return newLexError(UnterminatedComment, Span{lo, lexer.cur})
}

func (lexer *Lexer) scanString() (*Token, error) {
	// read until EOF or a matching '"', the string may contain '\n'
	for lexer.hasNext() && lexer.peek() != '"' {
		lexer.advance()
	}
	if !lexer.hasNext() {
		return nil, newLexError(UnterminatedString, lexer.span())
	}
	lexer.advance()
	literal := lexer.source[lexer.start.Idx+1 : lexer.cur.Idx-1]
	return lexer.token(TokenString, literal), nil
}

// scanNumber consumes a run of digits containing at most one '.', so "1.2.3"
// is scanned as "1.2" followed by ".3".
func (lexer *Lexer) scanNumber(dot bool) (*Token, error) {
	for {
		r := lexer.peek()
		if isDigit(r) {
			lexer.advance()
		} else if r == '.' && !dot {
			dot = true
			lexer.advance()
		} else {
			break
		}
	}
	span := lexer.span()
	text := span.Text(lexer.source)
	literal, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lexErr := newLexError(MalformedNumber, span)
		lexErr.Text = text
		return nil, lexErr
	}
	return lexer.token(TokenNumber, literal), nil
}

func (lexer *Lexer) scanIdentifier() *Token {
	for isIdentTail(lexer.peek()) {
		lexer.advance()
	}
	lexeme := lexer.span().Text(lexer.source)
	if typ, isKeyword := keywords[lexeme]; isKeyword {
		return lexer.token(typ, nil)
	}
	return lexer.token(TokenIdentifier, lexeme)
}

// either consumes the expected rune and returns a token of type matched, or
// returns a token of type otherwise if the next rune is different.
func (lexer *Lexer) either(expected rune, matched, otherwise TokenType) *Token {
	if lexer.match(expected) {
		return lexer.token(matched, nil)
	}
	return lexer.token(otherwise, nil)
}

// token creates a token covering the source from start to the current
// position.
func (lexer *Lexer) token(typ TokenType, literal interface{}) *Token {
	span := lexer.span()
	return NewToken(typ, span, span.Text(lexer.source), literal)
}

func (lexer *Lexer) span() Span {
	return Span{lexer.start, lexer.cur}
}

// hasNext returns true if the lexer has not read past the source length
func (lexer *Lexer) hasNext() bool {
	return lexer.cur.Idx < len(lexer.source)
}

// advance consumes and returns the rune at the current position
func (lexer *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(lexer.source[lexer.cur.Idx:])
	lexer.cur.Idx += size
	if r == '\n' {
		lexer.cur.Row++
		lexer.cur.Col = 1
	} else {
		lexer.cur.Col++
	}
	return r
}

// match consumes the rune at the current position if it is equal to the
// expected rune.
func (lexer *Lexer) match(expected rune) bool {
	if !lexer.hasNext() || lexer.peek() != expected {
		return false
	}
	lexer.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (lexer *Lexer) peek() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(lexer.source[lexer.cur.Idx:])
	return r
}

// peekNext returns the rune after the current one, but does not consume it
func (lexer *Lexer) peekNext() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	_, size := utf8.DecodeRuneInString(lexer.source[lexer.cur.Idx:])
	if lexer.cur.Idx+size >= len(lexer.source) {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(lexer.source[lexer.cur.Idx+size:])
	return r
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentHead(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_'
}

func isIdentTail(r rune) bool {
	return isIdentHead(r) || isDigit(r)
}
