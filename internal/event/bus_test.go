package event

import (
	"errors"
	"testing"
)

type testEvent struct {
	topic Topic
	value int
}

func (e testEvent) EventTopic() Topic { return e.topic }

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"calc.display", "calc.display", true},
		{"calc.display", "calc.*", true},
		{"calc.tape.appended", "calc.*", true},
		{"calc.display", "*", true},
		{"calc.display", "app.*", false},
		{"calc.display", "calc.evaluated", false},
		{"calc", "calc.*", false},
		{"app.quit", "app.quit", true},
	}

	for _, tt := range tests {
		if got := tt.topic.Match(tt.pattern); got != tt.want {
			t.Errorf("Topic(%q).Match(%q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
		}
	}
}

func TestPublishDelivers(t *testing.T) {
	b := NewBus()

	var got []int
	_, err := b.SubscribeFunc("calc.*", func(ev any) error {
		got = append(got, ev.(testEvent).value)
		return nil
	})
	if err != nil {
		t.Fatalf("SubscribeFunc: %v", err)
	}

	if err := b.Publish(testEvent{topic: "calc.display", value: 1}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := b.Publish(testEvent{topic: "app.quit", value: 2}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := b.Publish(testEvent{topic: "calc.evaluated", value: 3}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("delivered values = %v, want [1 3]", got)
	}
}

func TestPublishWithoutTopicProvider(t *testing.T) {
	b := NewBus()
	if err := b.Publish(42); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Publish(42) error = %v, want ErrUnknownEvent", err)
	}
}

func TestSubscribeValidation(t *testing.T) {
	b := NewBus()
	if _, err := b.Subscribe("calc.*", nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("nil handler error = %v", err)
	}
	if _, err := b.SubscribeFunc("", func(any) error { return nil }); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic error = %v", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()

	calls := 0
	sub, err := b.SubscribeFunc("calc.*", func(any) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("SubscribeFunc: %v", err)
	}

	_ = b.Publish(testEvent{topic: "calc.display"})
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	_ = b.Publish(testEvent{topic: "calc.display"})

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}

	if err := b.Unsubscribe(sub); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("double unsubscribe error = %v", err)
	}
	if err := b.Unsubscribe(nil); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("nil unsubscribe error = %v", err)
	}
}

func TestPublishHandlerError(t *testing.T) {
	b := NewBus()
	wantErr := errors.New("handler failed")

	_, _ = b.SubscribeFunc("calc.*", func(any) error { return wantErr })

	delivered := false
	_, _ = b.SubscribeFunc("calc.*", func(any) error {
		delivered = true
		return nil
	})

	err := b.Publish(testEvent{topic: "calc.display"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Publish error = %v, want %v", err, wantErr)
	}
	if !delivered {
		t.Error("later subscribers should still run after a handler error")
	}
}

func TestPublishPanicRecovery(t *testing.T) {
	var recovered any
	b := NewBus(WithPanicHandler(func(_ any, r any) {
		recovered = r
	}))

	_, _ = b.SubscribeFunc("calc.*", func(any) error {
		panic("boom")
	})

	survived := false
	_, _ = b.SubscribeFunc("calc.*", func(any) error {
		survived = true
		return nil
	})

	if err := b.Publish(testEvent{topic: "calc.display"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if recovered != "boom" {
		t.Errorf("panic handler got %v, want boom", recovered)
	}
	if !survived {
		t.Error("subscribers after a panic should still run")
	}

	if stats := b.Stats(); stats.HandlerPanics != 1 {
		t.Errorf("HandlerPanics = %d, want 1", stats.HandlerPanics)
	}
}

func TestStats(t *testing.T) {
	b := NewBus()
	_, _ = b.SubscribeFunc("*", func(any) error { return nil })

	_ = b.Publish(testEvent{topic: "calc.display"})
	_ = b.Publish(testEvent{topic: "app.quit"})

	stats := b.Stats()
	if stats.Published != 2 {
		t.Errorf("Published = %d, want 2", stats.Published)
	}
	if stats.Delivered != 2 {
		t.Errorf("Delivered = %d, want 2", stats.Delivered)
	}
	if stats.Subscribers != 1 {
		t.Errorf("Subscribers = %d, want 1", stats.Subscribers)
	}
}
