package lox

import (
	"fmt"
	"io"
	"log/slog"
)

// Interpreter exposes methods for evaluating the given syntax tree. This
// struct implements ExprVisitor and StmtVisitor.
type Interpreter struct {
	environment *Environment
	output      io.Writer
	logger      *slog.Logger
}

// NewInterpreter creates an interpreter that prints to output. A nil logger
// discards all records.
func NewInterpreter(output io.Writer, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = discardLogger()
	}
	return &Interpreter{NewEnvironment(), output, logger}
}

// Interpret executes a statement tree. A sequence opens its own scope.
func (in *Interpreter) Interpret(stmt Stmt) error {
	_, err := in.exec(stmt)
	return err
}

// Execute runs the statements in the global scope, so the bindings they make
// are visible to later calls.
func (in *Interpreter) Execute(stmts []Stmt) error {
	for _, stmt := range stmts {
		if _, err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes the value of an expression.
func (in *Interpreter) Evaluate(expr Expr) (Value, error) {
	return in.eval(expr)
}

func (in *Interpreter) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	val, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	in.environment.Set(stmt.Name, val)
	return nil, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	val, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(in.output, val); err != nil {
		return nil, err
	}
	return nil, nil
}

func (in *Interpreter) VisitSeqStmt(stmt *SeqStmt) (interface{}, error) {
	in.environment.Push()
	in.logger.Debug("Entered scope", "depth", in.environment.Depth())
	defer func() {
		in.environment.Pop()
		in.logger.Debug("Left scope", "depth", in.environment.Depth())
	}()
	for _, stmt := range stmt.Stmts {
		if _, err := in.exec(stmt); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if v, ok := expr.Lit.(VarLit); ok {
		val, ok := in.environment.Get(v.Name)
		if !ok {
			return nil, newUndefinedVariable(expr.Span, v.Name)
		}
		return val, nil
	}
	val, _ := lower(expr.Lit)
	return val, nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	val, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case OpNegate:
		if num, ok := val.(NumberValue); ok {
			return -num, nil
		}
		return nil, newTypeMismatch(expr.Span, expr.Op.String(), "a number", val)
	case OpNot:
		if b, ok := val.(BoolValue); ok {
			return !b, nil
		}
		return nil, newTypeMismatch(expr.Span, expr.Op.String(), "a bool", val)
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case OpEqual:
		return BoolValue(equal(lhs, rhs)), nil
	case OpNotEqual:
		return BoolValue(!equal(lhs, rhs)), nil
	}

	leftNum, okLeftNum := lhs.(NumberValue)
	rightNum, okRightNum := rhs.(NumberValue)
	if !okLeftNum {
		return nil, newTypeMismatch(expr.Span, expr.Op.String(), "numbers", lhs)
	}
	if !okRightNum {
		return nil, newTypeMismatch(expr.Span, expr.Op.String(), "numbers", rhs)
	}

	switch expr.Op {
	case OpAdd:
		return leftNum + rightNum, nil
	case OpSub:
		return leftNum - rightNum, nil
	case OpMul:
		return leftNum * rightNum, nil
	case OpDiv:
		// IEEE 754 division, 1/0 is inf and 0/0 is NaN
		return leftNum / rightNum, nil
	case OpLess:
		return BoolValue(leftNum < rightNum), nil
	case OpLessEqual:
		return BoolValue(leftNum <= rightNum), nil
	case OpGreater:
		return BoolValue(leftNum > rightNum), nil
	case OpGreaterEqual:
		return BoolValue(leftNum >= rightNum), nil
	}
	panic("Unreachable")
}

func (in *Interpreter) exec(stmt Stmt) (interface{}, error) {
	return stmt.Accept(in)
}

func (in *Interpreter) eval(expr Expr) (Value, error) {
	val, err := expr.Accept(in)
	if err != nil {
		return nil, err
	}
	return val.(Value), nil
}
