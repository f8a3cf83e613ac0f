package lox

import (
	"fmt"

	"github.com/pkg/errors"
)

// LexErrorKind classifies errors found while scanning.
type LexErrorKind int

const (
	UnterminatedString LexErrorKind = iota
	UnterminatedComment
	UnexpectedChar
	MalformedNumber
)

// LexError is returned by the lexer when the source text cannot be turned into
// a token.
type LexError struct {
	Kind LexErrorKind
	Span Span
	// Char is the offending character of an UnexpectedChar error.
	Char rune
	// Text is the offending literal of a MalformedNumber error.
	Text string
}

func newLexError(kind LexErrorKind, span Span) *LexError {
	return &LexError{Kind: kind, Span: span}
}

func (err *LexError) Error() string {
	var msg string
	switch err.Kind {
	case UnterminatedString:
		msg = "Unterminated string."
	case UnterminatedComment:
		msg = "Unterminated multiline comment."
	case UnexpectedChar:
		msg = fmt.Sprintf("Unexpected character %q.", err.Char)
	case MalformedNumber:
		msg = fmt.Sprintf("Malformed number '%s'.", err.Text)
	}
	return fmt.Sprintf("[%s] Error: %s", err.Span, msg)
}

// ParseErrorKind classifies errors found while parsing.
type ParseErrorKind int

const (
	ExpectedExpression ParseErrorKind = iota
	ExpectedToken
	UnexpectedEOF
)

// ParseError wraps the error message returned by the parser with the token
// where parsing stopped.
type ParseError struct {
	Kind ParseErrorKind
	Span Span
	// Expected describes what the parser was looking for, e.g. "'}'" or
	// "expression".
	Expected string
	Found    *Token
}

func newParseError(kind ParseErrorKind, found *Token, expected string) *ParseError {
	return &ParseError{kind, found.Span, expected, found}
}

func (err *ParseError) Error() string {
	var msg string
	switch err.Kind {
	case ExpectedExpression:
		msg = "Expect expression."
	case ExpectedToken:
		msg = fmt.Sprintf("Expect %s.", err.Expected)
	case UnexpectedEOF:
		msg = fmt.Sprintf("Unexpected end of input, expect %s.", err.Expected)
	}
	if err.Found == nil || err.Found.Typ == TokenEOF {
		return fmt.Sprintf("[%s] Error at end: %s", err.Span, msg)
	}
	return fmt.Sprintf("[%s] Error at '%s': %s", err.Span, err.Found.Lexeme, msg)
}

// RuntimeErrorKind classifies errors raised during evaluation.
type RuntimeErrorKind int

const (
	UndefinedVariable RuntimeErrorKind = iota
	TypeMismatch
)

// RuntimeError is raised by the interpreter. Span locates the variable or the
// operator that failed.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Span Span
	// Name of the variable of an UndefinedVariable error.
	Name string
	// Op, Expected and Found describe a TypeMismatch: the operator, the kind
	// of value it needs and the value it got.
	Op       string
	Expected string
	Found    Value
}

func newUndefinedVariable(span Span, name string) *RuntimeError {
	return &RuntimeError{Kind: UndefinedVariable, Span: span, Name: name}
}

func newTypeMismatch(span Span, op string, expected string, found Value) *RuntimeError {
	return &RuntimeError{
		Kind:     TypeMismatch,
		Span:     span,
		Op:       op,
		Expected: expected,
		Found:    found,
	}
}

func (err *RuntimeError) Error() string {
	var msg string
	switch err.Kind {
	case UndefinedVariable:
		msg = fmt.Sprintf("Undefined variable '%s'.", err.Name)
	case TypeMismatch:
		msg = fmt.Sprintf(
			"'%s' expects %s, found %s %s.",
			err.Op, err.Expected, err.Found.Kind(), quote(err.Found),
		)
	}
	return fmt.Sprintf("[%s] Runtime error: %s", err.Span, msg)
}

// IsRuntimeError reports whether err, or any error it wraps, was raised by the
// interpreter.
func IsRuntimeError(err error) bool {
	var rtErr *RuntimeError
	return errors.As(err, &rtErr)
}

// IsIncomplete reports whether err was caused by the source ending early, so
// that more input could still make it valid.
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind == UnexpectedEOF
	}
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Kind == UnterminatedString || lexErr.Kind == UnterminatedComment
	}
	return false
}
