package lox

import (
	"context"
	"log/slog"
)

// TokenSource produces tokens one at a time. The source must keep returning an
// EOF token once it is exhausted. *Lexer is a TokenSource.
type TokenSource interface {
	Next() (*Token, error)
}

type sliceSource struct {
	tokens  []*Token
	current int
}

// NewSliceSource adapts an already scanned list of tokens. The list must end
// with an EOF token.
func NewSliceSource(tokens []*Token) TokenSource {
	return &sliceSource{tokens, 0}
}

func (src *sliceSource) Next() (*Token, error) {
	tok := src.tokens[src.current]
	if src.current < len(src.tokens)-1 {
		src.current++
	}
	return tok, nil
}

// Parser composes the syntax tree from the sequence of tokens that follow the
// grammar described in the package documentation. Binary operators are parsed
// by precedence climbing instead of having one rule per precedence level.
//
// The parser does not recover from errors, it stops at the first one.
type Parser struct {
	tokens TokenSource
	peeked *Token
	logger *slog.Logger
}

// NewParser creates a parser that pulls its tokens from the given source. A
// nil logger discards all records.
func NewParser(tokens TokenSource, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = discardLogger()
	}
	return &Parser{tokens, nil, logger}
}

// Parse parses a whole program. The statements of the program are returned as
// a single sequence.
//
// program --> ( stmt ";" )* EOF ;
func (parser *Parser) Parse() (*SeqStmt, error) {
	stmts, err := parser.statements()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenEOF, "end of input"); err != nil {
		return nil, err
	}
	return NewSeqStmt(stmts), nil
}

// ParseExpr parses a source that contains a single expression.
func (parser *Parser) ParseExpr() (Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenEOF, "end of input"); err != nil {
		return nil, err
	}
	return expr, nil
}

// statements parses statements until one can not be found at the current
// position.
func (parser *Parser) statements() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return stmts, nil
		}
		if _, err := parser.consume(TokenSemicolon, "';' after statement"); err != nil {
			return nil, err
		}
		if parser.logger.Enabled(context.Background(), slog.LevelDebug) {
			parser.logger.Debug("Parsed statement", "stmt", new(AstPrinter).PrintStmt(stmt))
		}
		stmts = append(stmts, stmt)
	}
}

// statement returns a nil statement without error when the next token can not
// start a statement.
//
// stmt --> "print" expr
//        | "{" ( stmt ";" )* "}"
//        | "var"? IDENT "=" expr ;
func (parser *Parser) statement() (Stmt, error) {
	tok, err := parser.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Typ {
	case TokenPrint:
		parser.advance()
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		return NewPrintStmt(expr), nil
	case TokenLeftBrace:
		parser.advance()
		stmts, err := parser.statements()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(TokenRightBrace, "'}' after block"); err != nil {
			return nil, err
		}
		return NewSeqStmt(stmts), nil
	case TokenVar:
		parser.advance()
		return parser.assignment()
	case TokenIdentifier:
		return parser.assignment()
	}
	return nil, nil
}

func (parser *Parser) assignment() (Stmt, error) {
	name, err := parser.consume(TokenIdentifier, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenEqual, "'=' after variable name"); err != nil {
		return nil, err
	}
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewAssignStmt(name.Lexeme, name.Span, expr), nil
}

// expr --> binary(0) ;
func (parser *Parser) expression() (Expr, error) {
	return parser.binary(0)
}

// binary parses a left-associative chain of binary operators whose doubled
// precedence is at least minPrec. The right operand of an operator only takes
// operators of strictly higher precedence, so "1 - 2 - 3" groups as
// "(1 - 2) - 3" and "1 + 2 * 3" as "1 + (2 * 3)".
func (parser *Parser) binary(minPrec int) (Expr, error) {
	lhs, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := parser.peek()
		if err != nil {
			return nil, err
		}
		prec, ok := tok.Typ.precedence()
		if !ok || prec*2 < minPrec {
			return lhs, nil
		}
		parser.advance()
		rhs, err := parser.binary(prec*2 + 1)
		if err != nil {
			return nil, err
		}
		lhs = NewBinaryExpr(binaryOps[tok.Typ], tok.Span, lhs, rhs)
	}
}

// unary --> ( "!" | "-" ) unary
//         | primary ;
func (parser *Parser) unary() (Expr, error) {
	tok, err := parser.peek()
	if err != nil {
		return nil, err
	}
	op, ok := unaryOps[tok.Typ]
	if !ok {
		return parser.primary()
	}
	parser.advance()
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	return NewUnaryExpr(op, tok.Span, expr), nil
}

// primary --> NUMBER | STRING | IDENT
//           | "true" | "false" | "nil"
//           | "(" expr ")" ;
func (parser *Parser) primary() (Expr, error) {
	tok, err := parser.peek()
	if err != nil {
		return nil, err
	}
	var lit Lit
	switch tok.Typ {
	case TokenNumber:
		lit = NumberLit(tok.Literal.(float64))
	case TokenString:
		lit = StringLit(tok.Literal.(string))
	case TokenTrue:
		lit = BoolLit(true)
	case TokenFalse:
		lit = BoolLit(false)
	case TokenNil:
		lit = NilLit{}
	case TokenIdentifier:
		lit = VarLit{tok.Lexeme}
	case TokenLeftParen:
		parser.advance()
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(TokenRightParen, "')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case TokenEOF:
		return nil, newParseError(UnexpectedEOF, tok, "expression")
	default:
		return nil, newParseError(ExpectedExpression, tok, "expression")
	}
	parser.advance()
	return NewLiteralExpr(lit, tok.Span), nil
}

// consume advances past the next token if it has the given type, otherwise it
// fails with a description of what was expected.
func (parser *Parser) consume(typ TokenType, expected string) (*Token, error) {
	tok, err := parser.peek()
	if err != nil {
		return nil, err
	}
	if tok.Typ == typ {
		return parser.advance(), nil
	}
	if tok.Typ == TokenEOF {
		return nil, newParseError(UnexpectedEOF, tok, expected)
	}
	return nil, newParseError(ExpectedToken, tok, expected)
}

// peek returns the next token without consuming it
func (parser *Parser) peek() (*Token, error) {
	if parser.peeked == nil {
		tok, err := parser.tokens.Next()
		if err != nil {
			return nil, err
		}
		parser.peeked = tok
	}
	return parser.peeked, nil
}

// advance consumes the token returned by the last call to peek
func (parser *Parser) advance() *Token {
	tok := parser.peeked
	parser.peeked = nil
	return tok
}
