package middleware

import (
	"testing"

	"github.com/iansan5653/propwatch/pkg/propwatch"
)

// countingSink is a terminal Notifier for tests.
type countingSink struct {
	count int
}

func (s *countingSink) Notify() {
	s.count++
}

// tagging returns middleware recording its tag into order on each pass.
func tagging(tag string, order *[]string) Middleware {
	return MiddlewareFunc(func(next propwatch.Notifier) propwatch.Notifier {
		return propwatch.NotifierFunc(func() {
			*order = append(*order, tag)
			next.Notify()
		})
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	terminal := &countingSink{}

	sink := Chain(terminal, tagging("outer", &order), tagging("inner", &order))
	sink.Notify()

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("expected outer before inner, got %v", order)
	}
	if terminal.count != 1 {
		t.Errorf("expected terminal sink to run once, got %d", terminal.count)
	}
}

func TestChainEmpty(t *testing.T) {
	terminal := &countingSink{}

	sink := Chain(terminal)
	if sink != propwatch.Notifier(terminal) {
		t.Error("expected empty chain to return the sink unchanged")
	}
}

func TestChainForwardsOnePerNotify(t *testing.T) {
	terminal := &countingSink{}
	sink := Chain(terminal, tagging("a", new([]string)), tagging("b", new([]string)))

	for i := 0; i < 5; i++ {
		sink.Notify()
	}

	if terminal.count != 5 {
		t.Errorf("expected 5 deliveries, got %d", terminal.count)
	}
}

func TestMiddlewareFunc(t *testing.T) {
	terminal := &countingSink{}
	passthrough := MiddlewareFunc(func(next propwatch.Notifier) propwatch.Notifier {
		return next
	})

	passthrough.Wrap(terminal).Notify()

	if terminal.count != 1 {
		t.Errorf("expected 1 delivery, got %d", terminal.count)
	}
}
