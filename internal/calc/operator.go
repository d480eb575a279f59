// Package calc provides the arithmetic evaluator for the calculator.
// Evaluation is a pure function over two float64 operands and an
// operator; all stateful behavior lives in the engine package.
package calc

// Operator identifies a binary arithmetic operation.
type Operator uint8

// Supported operators.
const (
	// OpNone indicates no operator is selected.
	OpNone Operator = iota
	// OpAdd is addition.
	OpAdd
	// OpSubtract is subtraction.
	OpSubtract
	// OpMultiply is multiplication.
	OpMultiply
	// OpDivide is floating-point division.
	OpDivide
	// OpModulo is the floating-point remainder with the sign of the dividend.
	OpModulo
)

// String returns the display symbol for the operator.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	default:
		return ""
	}
}

// IsNone returns true if no operator is selected.
func (o Operator) IsNone() bool {
	return o == OpNone
}

// OperatorFromRune maps an operator symbol to its Operator.
// Returns OpNone and false for anything that is not an operator symbol.
func OperatorFromRune(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSubtract, true
	case '*':
		return OpMultiply, true
	case '/':
		return OpDivide, true
	case '%':
		return OpModulo, true
	default:
		return OpNone, false
	}
}
