package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/calcstorm/internal/calc"
	"github.com/dshills/calcstorm/internal/engine/tape"
	"github.com/dshills/calcstorm/internal/input"
)

// ErrInvalidNumber indicates the display text could not be parsed when
// an operator or equals was pressed.
var ErrInvalidNumber = errors.New("invalid number")

// Outcome is the result of reducing one command.
type Outcome struct {
	// State is the calculator state after the command.
	State State

	// Entry is non-nil when the command completed an evaluation.
	Entry *tape.Entry

	// Err is the recoverable error raised by the command, if any.
	// The error is already reflected in State; callers use it only
	// for reporting.
	Err error
}

// Reduce applies a single command to the state. It is a pure function:
// the input state is never mutated and identical inputs yield
// identical outcomes.
func Reduce(st State, cmd input.Command) Outcome {
	switch cmd.Kind {
	case input.KindDigit:
		return reduceDigit(st, cmd.Digit)
	case input.KindDecimal:
		return reduceDecimal(st)
	case input.KindOperator:
		return reduceOperator(st, cmd.Op)
	case input.KindEquals:
		return reduceEquals(st)
	case input.KindClear:
		return Outcome{State: NewState()}
	default:
		return Outcome{State: st}
	}
}

// reduceDigit enters one digit.
func reduceDigit(st State, d int) Outcome {
	if d < 0 || d > 9 {
		return Outcome{State: st, Err: fmt.Errorf("digit out of range: %d", d)}
	}
	digit := string(rune('0' + d))

	if st.StartNew {
		if d == 0 {
			// A fresh zero keeps the display at "0" and stays armed
			// for the first significant digit.
			st.Display = "0"
			return Outcome{State: st}
		}
		st.Display = digit
		st.StartNew = false
		return Outcome{State: st}
	}

	if st.Display == "0" {
		if d == 0 {
			return Outcome{State: st}
		}
		st.Display = digit
		return Outcome{State: st}
	}

	st.Display += digit
	return Outcome{State: st}
}

// reduceDecimal enters the decimal point.
func reduceDecimal(st State) Outcome {
	if st.StartNew {
		st.Display = "0."
		st.StartNew = false
		return Outcome{State: st}
	}
	if !strings.ContainsRune(st.Display, '.') {
		st.Display += "."
	}
	return Outcome{State: st}
}

// reduceOperator stores a pending operator, evaluating any previous
// pending operation first.
func reduceOperator(st State, op calc.Operator) Outcome {
	value, err := calc.ParseNumber(st.Display)
	if err != nil {
		st.Display = DisplayError
		st.Pending = calc.OpNone
		st.StartNew = true
		return Outcome{State: st, Err: ErrInvalidNumber}
	}

	var entry *tape.Entry
	if !st.Pending.IsNone() {
		result, evalErr := calc.Evaluate(st.Accumulator, value, st.Pending)
		if evalErr != nil {
			st.Display = DisplayDivZero
			st.Pending = calc.OpNone
			st.StartNew = true
			return Outcome{State: st, Err: evalErr}
		}
		entry = &tape.Entry{
			Left:   st.Accumulator,
			Op:     st.Pending,
			Right:  value,
			Result: result,
		}
		st.Accumulator = result
		st.Display = calc.Format(result)
	} else {
		st.Accumulator = value
	}

	st.Pending = op
	st.StartNew = true
	return Outcome{State: st, Entry: entry}
}

// reduceEquals completes the pending operation.
func reduceEquals(st State) Outcome {
	if st.Pending.IsNone() {
		return Outcome{State: st}
	}

	value, err := calc.ParseNumber(st.Display)
	if err != nil {
		st.Display = DisplayError
		st.Pending = calc.OpNone
		st.StartNew = true
		return Outcome{State: st, Err: ErrInvalidNumber}
	}

	result, evalErr := calc.Evaluate(st.Accumulator, value, st.Pending)
	if evalErr != nil {
		st.Display = DisplayDivZero
		st.Pending = calc.OpNone
		st.StartNew = true
		return Outcome{State: st, Err: evalErr}
	}

	entry := &tape.Entry{
		Left:   st.Accumulator,
		Op:     st.Pending,
		Right:  value,
		Result: result,
	}
	st.Accumulator = result
	st.Display = calc.Format(result)
	st.Pending = calc.OpNone
	st.StartNew = true
	return Outcome{State: st, Entry: entry}
}
