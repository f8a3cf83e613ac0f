package lox

import (
	"math"
	"strconv"
)

// Value is the result of evaluating an expression.
type Value interface {
	// Kind names the type of the value in error messages.
	Kind() string
	String() string
}

type (
	NumberValue float64
	StringValue string
	BoolValue   bool
	NilValue    struct{}
)

func (NumberValue) Kind() string { return "number" }
func (StringValue) Kind() string { return "string" }
func (BoolValue) Kind() string   { return "bool" }
func (NilValue) Kind() string    { return "nil" }

func (v NumberValue) String() string {
	switch f := float64(v); {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

func (v StringValue) String() string { return string(v) }

func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }

func (NilValue) String() string { return "nil" }

// lower turns a constant literal into its runtime value. Variable references
// are not constants and must be resolved by the caller.
func lower(lit Lit) (Value, bool) {
	switch lit := lit.(type) {
	case NumberLit:
		return NumberValue(lit), true
	case StringLit:
		return StringValue(lit), true
	case BoolLit:
		return BoolValue(lit), true
	case NilLit:
		return NilValue{}, true
	}
	return nil, false
}

// equal compares two values by kind then by value. Values of different kinds
// are never equal.
func equal(lhs, rhs Value) bool {
	switch lhs := lhs.(type) {
	case NumberValue:
		rhs, ok := rhs.(NumberValue)
		return ok && lhs == rhs
	case StringValue:
		rhs, ok := rhs.(StringValue)
		return ok && lhs == rhs
	case BoolValue:
		rhs, ok := rhs.(BoolValue)
		return ok && lhs == rhs
	case NilValue:
		_, ok := rhs.(NilValue)
		return ok
	}
	return false
}

// quote renders a value the way it would be written in the source.
func quote(v Value) string {
	if s, ok := v.(StringValue); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}
