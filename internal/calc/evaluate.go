package calc

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned when the right operand of a division or
// modulo operation is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluate applies op to left and right and returns the result.
//
// Division and modulo fail with ErrDivisionByZero when right is zero.
// An unrecognized operator returns the right operand unchanged. That
// identity fallback is long-standing observable behavior and is kept
// as-is rather than being turned into an error.
func Evaluate(left, right float64, op Operator) (float64, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSubtract:
		return left - right, nil
	case OpMultiply:
		return left * right, nil
	case OpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case OpModulo:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return math.Mod(left, right), nil
	default:
		return right, nil
	}
}
