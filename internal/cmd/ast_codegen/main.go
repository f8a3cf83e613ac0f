package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	// we do it the scripting way, instead of having types support from Go stdlib
	expressionTypes := []string{
		// Span of a Binary or Unary expression locates its operator, so
		// runtime errors can point at it.
		"Binary: Op BinaryOp, Span Span, Lhs Expr, Rhs Expr",
		"Literal: Lit Lit, Span Span",
		"Unary: Op UnaryOp, Span Span, Expr Expr",
	}
	statementTypes := []string{
		"Assign: Name string, Span Span, Expr Expr",
		"Print: Expr Expr",
		"Seq: Stmts []Stmt",
	}

	exitOnError(defineAst(outputDir, "Expr", expressionTypes))
	exitOnError(defineAst(outputDir, "Stmt", statementTypes))
}

func defineAst(outputDir string, baseName string, types []string) error {
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)

	// gofmt is run on the whole buffer before anything touches the disk
	var buf bytes.Buffer
	packageName := filepath.Base(outputDir)
	if packageName == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		packageName = filepath.Base(wd)
	}
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface for the base type in AST
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields, fieldNames, params []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		parts := strings.SplitN(field, " ", 2)
		fieldNames = append(fieldNames, parts[0])
		params = append(params, fmt.Sprintf("%s %s", lowerFirst(parts[0]), parts[1]))
	}

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	var args []string
	for _, name := range fieldNames {
		args = append(args, lowerFirst(name))
	}
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(params, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(args, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
