package dispatcher

import (
	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/input"
)

// calcHandler applies calculator commands to the engine.
type calcHandler struct {
	engine *engine.Engine
}

// Handle implements Handler.
func (h calcHandler) Handle(cmd input.Command) Result {
	before := h.engine.State()
	out := h.engine.Apply(cmd)

	switch {
	case out.Err != nil:
		// The error is already reflected in the display; report it
		// without failing the dispatch pipeline.
		return Result{Status: StatusOK, Err: out.Err, Message: out.State.Display}
	case out.State == before:
		return NoOp()
	default:
		return OK()
	}
}

// RegisterCalculator registers handlers for every calculator command
// plus the quit command.
func RegisterCalculator(d *Dispatcher, e *engine.Engine) error {
	h := calcHandler{engine: e}
	for _, name := range []string{
		input.NameDigit,
		input.NameDecimal,
		input.NameOperator,
		input.NameEquals,
		input.NameClear,
	} {
		if err := d.Register(name, h); err != nil {
			return err
		}
	}

	return d.RegisterFunc(input.NameQuit, func(input.Command) Result {
		return Quit()
	})
}
