package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders a syntax tree as S-expressions, e.g. "1 + 2 * 3" is
// printed as "(+ 1 (* 2 3))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	s, _ := stmt.Accept(printer)
	return s.(string)
}

func (printer *AstPrinter) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	return fmt.Sprintf("(var %s %s)", stmt.Name, printer.Print(stmt.Expr)), nil
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return fmt.Sprintf("(print %s)", printer.Print(stmt.Expr)), nil
}

func (printer *AstPrinter) VisitSeqStmt(stmt *SeqStmt) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(seq")
	for _, s := range stmt.Stmts {
		b.WriteString(" ")
		b.WriteString(printer.PrintStmt(s))
	}
	b.WriteString(")")
	return b.String(), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return fmt.Sprintf(
		"(%s %s %s)",
		expr.Op,
		printer.Print(expr.Lhs),
		printer.Print(expr.Rhs),
	), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch lit := expr.Lit.(type) {
	case NumberLit:
		return strconv.FormatFloat(float64(lit), 'f', -1, 64), nil
	case StringLit:
		return strconv.Quote(string(lit)), nil
	case BoolLit:
		return strconv.FormatBool(bool(lit)), nil
	case NilLit:
		return "nil", nil
	case VarLit:
		return lit.Name, nil
	}
	panic("Unreachable")
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", expr.Op, printer.Print(expr.Expr)), nil
}
