package lox

//go:generate go run ../cmd/ast_codegen .

// Lit is a literal as written in the source. The interpreter lowers it into a
// Value.
type Lit interface {
	isLit()
}

type (
	NumberLit float64
	StringLit string
	BoolLit   bool
	NilLit    struct{}
	// VarLit references a variable by name.
	VarLit struct {
		Name string
	}
)

func (NumberLit) isLit() {}
func (StringLit) isLit() {}
func (BoolLit) isLit()   {}
func (NilLit) isLit()    {}
func (VarLit) isLit()    {}

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	OpNegate UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "-"
	case OpNot:
		return "!"
	}
	return ""
}

// BinaryOp is an infix operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNotEqual
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	}
	return ""
}

var binaryOps = map[TokenType]BinaryOp{
	TokenPlus:         OpAdd,
	TokenMinus:        OpSub,
	TokenStar:         OpMul,
	TokenSlash:        OpDiv,
	TokenLess:         OpLess,
	TokenLessEqual:    OpLessEqual,
	TokenGreater:      OpGreater,
	TokenGreaterEqual: OpGreaterEqual,
	TokenEqualEqual:   OpEqual,
	TokenBangEqual:    OpNotEqual,
}

var unaryOps = map[TokenType]UnaryOp{
	TokenMinus: OpNegate,
	TokenBang:  OpNot,
}
