package main

// This is an interpreter for a small subset of the Lox programming language.

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/ltungv/lox/slox/internal/logging"
	"github.com/ltungv/lox/slox/internal/lox"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 64
	exitData     = 65
	exitNoInput  = 66
	exitSoftware = 70
)

const (
	historyFile  = ".slox_history"
	promptMain   = "> "
	promptCont   = ". "
	usageMessage = "Usage: slox [flags] [script]"
)

type options struct {
	printTokens bool
	printAST    bool
	history     string
}

// runner runs a source with an interpreter, either in a scope of its own or in
// the interpreter's global scope.
type runner func(source string, in *lox.Interpreter, logger *slog.Logger) error

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("slox", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, usageMessage)
		fs.PrintDefaults()
	}

	var logParams logging.Parameters
	logParams.Initialize(fs)
	var opts options
	fs.BoolVar(&opts.printTokens, "print-tokens", false, "Print the tokens of the source instead of running it.")
	fs.BoolVar(&opts.printAST, "print-ast", false, "Print the syntax tree of the source instead of running it.")
	fs.StringVar(&opts.history, "history", defaultHistory(), "Prompt history file, empty to disable history.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if err := logParams.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	logger := slog.New(logging.DefaultHandler(logParams))
	logger.Debug("Logger initialized", "params", logParams.String())

	reporter := lox.NewSimpleReporter(os.Stderr)
	if fs.NArg() == 1 {
		return runFile(fs.Arg(0), opts, reporter, logger)
	}
	return runPrompt(opts, reporter, logger)
}

// Run the given file as script
func runFile(path string, opts options, reporter lox.Reporter, logger *slog.Logger) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, os.ErrNotExist) {
			return exitNoInput
		}
		return exitFailure
	}
	logger.Debug("Read script", "path", path, "size", len(source))

	interpreter := lox.NewInterpreter(os.Stdout, logger)
	execute(string(source), lox.Run, interpreter, opts, reporter, logger)
	switch {
	case reporter.HadError():
		return exitData
	case reporter.HadRuntimeError():
		return exitSoftware
	}
	return exitOK
}

// Run the interpreter in REPL mode. Bindings made by one input stay visible to
// the following ones.
func runPrompt(opts options, reporter lox.Reporter, logger *slog.Logger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if opts.history != "" {
		if f, err := os.Open(opts.history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	interpreter := lox.NewInterpreter(os.Stdout, logger)
	for {
		source, ok := readSource(ln)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		execute(source, lox.RunGlobal, interpreter, opts, reporter, logger)
		reporter.Reset()
	}

	if opts.history != "" {
		f, err := os.Create(opts.history)
		if err != nil {
			logger.Warn("Failed to save history", logging.Error(err))
			return exitOK
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return exitOK
}

// readSource reads lines until they form a source that is either valid or
// fails for a reason other than ending too early. An empty line ends the input
// early. It returns false once the user closes the input.
func readSource(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stderr, err)
			}
			return "", false
		}

		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return b.String(), true
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		_, err = lox.Parse(b.String(), nil)
		if !lox.IsIncomplete(err) {
			return b.String(), true
		}
	}
}

func execute(
	source string,
	runFn runner,
	in *lox.Interpreter,
	opts options,
	reporter lox.Reporter,
	logger *slog.Logger,
) {
	switch {
	case opts.printTokens:
		tokens, err := lox.Tokens(source, logger)
		if err != nil {
			report(err, reporter, logger)
			return
		}
		for _, tok := range tokens {
			fmt.Printf("%-6s %-14s %q\n", tok.Span, tok.Typ, tok.Lexeme)
		}
	case opts.printAST:
		prog, err := lox.Parse(source, logger)
		if err != nil {
			report(err, reporter, logger)
			return
		}
		fmt.Println(new(lox.AstPrinter).PrintStmt(prog))
	default:
		if err := runFn(source, in, logger); err != nil {
			report(err, reporter, logger)
		}
	}
}

func report(err error, reporter lox.Reporter, logger *slog.Logger) {
	logger.Debug("Failed to run source", logging.Error(err), logging.ErrorTrace(err))
	reporter.Report(errors.Cause(err))
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
