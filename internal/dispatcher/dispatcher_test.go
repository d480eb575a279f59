package dispatcher

import (
	"errors"
	"testing"

	"github.com/dshills/calcstorm/internal/calc"
	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/event"
	"github.com/dshills/calcstorm/internal/event/events"
	"github.com/dshills/calcstorm/internal/input"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "ok"},
		{StatusNoOp, "no-op"},
		{StatusError, "error"},
		{StatusQuit, "quit"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("a", nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("nil handler register err = %v, want ErrNilHandler", err)
	}

	if err := r.RegisterFunc("calc.digit", func(input.Command) Result { return OK() }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.RegisterFunc("app.quit", func(input.Command) Result { return Quit() }); err != nil {
		t.Fatalf("register: %v", err)
	}

	if !r.Has("calc.digit") || r.Has("calc.missing") {
		t.Error("Has reported wrong membership")
	}
	if got := r.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}

	names := r.List()
	if len(names) != 2 || names[0] != "app.quit" || names[1] != "calc.digit" {
		t.Errorf("List = %v, want sorted [app.quit calc.digit]", names)
	}

	r.Unregister("calc.digit")
	if r.Has("calc.digit") {
		t.Error("handler still present after Unregister")
	}

	r.Clear()
	if r.Count() != 0 {
		t.Error("Clear left handlers behind")
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	d := NewWithDefaults()
	res := d.Dispatch(input.Equals())
	if !res.IsError() {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if !errors.Is(res.Err, ErrNoHandler) {
		t.Errorf("Err = %v, want ErrNoHandler", res.Err)
	}
}

func TestDispatchRoutesByName(t *testing.T) {
	d := NewWithDefaults()
	var got string
	if err := d.RegisterFunc(input.NameClear, func(cmd input.Command) Result {
		got = cmd.Name()
		return OK()
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res := d.Dispatch(input.Clear())
	if !res.IsOK() {
		t.Errorf("status = %v, want ok", res.Status)
	}
	if got != input.NameClear {
		t.Errorf("handler saw %q, want %q", got, input.NameClear)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	d := NewWithDefaults()
	if err := d.RegisterFunc(input.NameEquals, func(input.Command) Result {
		panic("boom")
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res := d.Dispatch(input.Equals())
	if !res.IsError() {
		t.Fatalf("status = %v, want error", res.Status)
	}

	stats := d.Metrics().Stats(input.NameEquals)
	if stats.Panics != 1 {
		t.Errorf("panics = %d, want 1", stats.Panics)
	}
}

func TestDispatchPanicWithoutRecovery(t *testing.T) {
	d := New(Config{RecoverFromPanic: false})
	if err := d.RegisterFunc(input.NameEquals, func(input.Command) Result {
		panic("boom")
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected the panic to propagate")
		}
	}()
	d.Dispatch(input.Equals())
}

func TestDispatchMetrics(t *testing.T) {
	d := NewWithDefaults()
	if err := d.RegisterFunc(input.NameDigit, func(input.Command) Result { return OK() }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := d.RegisterFunc(input.NameEquals, func(input.Command) Result {
		return Errorf("nope")
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	d.Dispatch(input.Digit(1))
	d.Dispatch(input.Digit(2))
	d.Dispatch(input.Equals())

	if got := d.Metrics().Stats(input.NameDigit).Count; got != 2 {
		t.Errorf("digit count = %d, want 2", got)
	}
	eq := d.Metrics().Stats(input.NameEquals)
	if eq.Count != 1 || eq.Errors != 1 {
		t.Errorf("equals stats = %+v, want one dispatch and one error", eq)
	}
}

func TestDispatchPublishesCommandEvent(t *testing.T) {
	bus := event.NewBus()
	d := NewWithDefaults(WithBus(bus))
	if err := d.RegisterFunc(input.NameClear, func(input.Command) Result { return OK() }); err != nil {
		t.Fatalf("register: %v", err)
	}

	var seen []events.CommandDispatched
	if _, err := bus.SubscribeFunc(events.TopicInputCommand, func(ev any) error {
		if p, ok := ev.(events.CommandDispatched); ok {
			seen = append(seen, p)
		}
		return nil
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	d.Dispatch(input.Clear().WithSource(input.SourceMouse))

	if len(seen) != 1 {
		t.Fatalf("command events = %d, want 1", len(seen))
	}
	if seen[0].Name != input.NameClear || seen[0].Source != "mouse" {
		t.Errorf("event = %+v, want clear from mouse", seen[0])
	}
}

func TestRegisterCalculator(t *testing.T) {
	e := engine.New()
	d := NewWithDefaults()
	if err := RegisterCalculator(d, e); err != nil {
		t.Fatalf("RegisterCalculator: %v", err)
	}

	for _, cmd := range []input.Command{
		input.Digit(5),
		input.Operator(calc.OpAdd),
		input.Digit(3),
	} {
		if res := d.Dispatch(cmd); !res.IsOK() {
			t.Fatalf("dispatch %s: %+v", cmd, res)
		}
	}
	res := d.Dispatch(input.Equals())
	if !res.IsOK() {
		t.Fatalf("equals result = %+v", res)
	}
	if got := e.State().Display; got != "8" {
		t.Errorf("display = %q, want 8", got)
	}

	if res := d.Dispatch(input.Quit()); !res.IsQuit() {
		t.Errorf("quit result = %+v, want quit status", res)
	}
}

func TestCalcHandlerReportsRecoverableError(t *testing.T) {
	e := engine.New()
	d := NewWithDefaults()
	if err := RegisterCalculator(d, e); err != nil {
		t.Fatalf("RegisterCalculator: %v", err)
	}

	for _, cmd := range []input.Command{
		input.Digit(6),
		input.Operator(calc.OpDivide),
		input.Digit(0),
	} {
		d.Dispatch(cmd)
	}
	res := d.Dispatch(input.Equals())

	// Division by zero is recoverable: the display carries the error
	// text and dispatch succeeds.
	if res.IsError() {
		t.Errorf("status = %v, recoverable error must not fail dispatch", res.Status)
	}
	if !errors.Is(res.Err, calc.ErrDivisionByZero) {
		t.Errorf("Err = %v, want ErrDivisionByZero", res.Err)
	}
	if res.Message != engine.DisplayDivZero {
		t.Errorf("Message = %q, want %q", res.Message, engine.DisplayDivZero)
	}
}

func TestCalcHandlerNoOp(t *testing.T) {
	e := engine.New()
	d := NewWithDefaults()
	if err := RegisterCalculator(d, e); err != nil {
		t.Fatalf("RegisterCalculator: %v", err)
	}

	// Equals with nothing pending changes nothing.
	if res := d.Dispatch(input.Equals()); res.Status != StatusNoOp {
		t.Errorf("status = %v, want no-op", res.Status)
	}
}
