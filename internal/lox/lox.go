package lox

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/ltungv/lox/slox/internal/logging"
)

// Parse lexes and parses a whole program. The tokens are pulled from the lexer
// as the parser needs them. The returned error is a *LexError or a *ParseError
// wrapped with the name of the stage that failed.
func Parse(source string, logger *slog.Logger) (*SeqStmt, error) {
	if logger == nil {
		logger = discardLogger()
	}
	lexer := NewLexer(source, logging.Namespace(logger, "lexer"))
	parser := NewParser(lexer, logging.Namespace(logger, "parser"))
	prog, err := parser.Parse()
	if err != nil {
		return nil, wrapStage(err)
	}
	return prog, nil
}

// Tokens scans the whole source.
func Tokens(source string, logger *slog.Logger) ([]*Token, error) {
	if logger == nil {
		logger = discardLogger()
	}
	tokens, err := NewLexer(source, logging.Namespace(logger, "lexer")).Scan()
	if err != nil {
		return nil, wrapStage(err)
	}
	return tokens, nil
}

// Run parses the source and interprets it as a single statement tree, the
// program's bindings live in a scope of their own.
func Run(source string, in *Interpreter, logger *slog.Logger) error {
	prog, err := Parse(source, logger)
	if err != nil {
		return err
	}
	if err := in.Interpret(prog); err != nil {
		return wrapStage(err)
	}
	return nil
}

// RunGlobal is like Run, but the program's bindings are made in the global
// scope and outlive the call.
func RunGlobal(source string, in *Interpreter, logger *slog.Logger) error {
	prog, err := Parse(source, logger)
	if err != nil {
		return err
	}
	if err := in.Execute(prog.Stmts); err != nil {
		return wrapStage(err)
	}
	return nil
}

func wrapStage(err error) error {
	var (
		lexErr   *LexError
		parseErr *ParseError
	)
	switch {
	case errors.As(err, &lexErr):
		return errors.Wrap(err, "lex")
	case errors.As(err, &parseErr):
		return errors.Wrap(err, "parse")
	case IsRuntimeError(err):
		return errors.Wrap(err, "runtime")
	}
	return errors.Wrap(err, "output")
}

func discardLogger() *slog.Logger {
	return logging.Discard()
}
