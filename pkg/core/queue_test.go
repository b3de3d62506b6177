package core

import (
	"testing"

	"github.com/nikolaydubina/fpdecimal"
)

func limitOrder(t *testing.T, id string, qty float64) *Order {
	t.Helper()
	order, err := NewLimitOrder(id, Buy, fpdecimal.FromFloat(qty), fpdecimal.FromFloat(100.0))
	if err != nil {
		t.Fatalf("NewLimitOrder returned error: %v", err)
	}
	return order
}

func TestOrderQueueFIFO(t *testing.T) {
	q := NewOrderQueue()
	if q.Len() != 0 {
		t.Fatalf("Expected empty queue, got len %d", q.Len())
	}
	if q.Front() != nil {
		t.Fatal("Expected nil Front on empty queue")
	}

	first := limitOrder(t, "first", 1.0)
	second := limitOrder(t, "second", 2.0)
	third := limitOrder(t, "third", 3.0)

	q.Push(first)
	q.Push(second)
	q.Push(third)

	if q.Len() != 3 {
		t.Fatalf("Expected len 3, got %d", q.Len())
	}
	if q.Front().ID() != "first" {
		t.Errorf("Expected first at front, got %s", q.Front().ID())
	}
	if q.At(1).ID() != "second" {
		t.Errorf("Expected second at index 1, got %s", q.At(1).ID())
	}

	orders := q.Orders()
	if len(orders) != 3 || orders[0].ID() != "first" || orders[2].ID() != "third" {
		t.Errorf("Orders() lost arrival order: %v", orders)
	}
}

func TestOrderQueueSeeded(t *testing.T) {
	a := limitOrder(t, "a", 1.0)
	b := limitOrder(t, "b", 1.0)

	q := NewOrderQueue(a, b)
	if q.Len() != 2 {
		t.Fatalf("Expected len 2, got %d", q.Len())
	}
	if q.Front().ID() != "a" {
		t.Errorf("Expected a at front, got %s", q.Front().ID())
	}
}

func TestOrderQueueFind(t *testing.T) {
	q := NewOrderQueue(limitOrder(t, "a", 1.0), limitOrder(t, "b", 2.0))

	if got := q.Find("b"); got == nil || got.ID() != "b" {
		t.Errorf("Find(b) = %v", got)
	}
	if got := q.Find("missing"); got != nil {
		t.Errorf("Expected nil for missing id, got %v", got)
	}
}

func TestOrderQueueDelete(t *testing.T) {
	a := limitOrder(t, "a", 1.0)
	b := limitOrder(t, "b", 2.0)
	c := limitOrder(t, "c", 3.0)
	q := NewOrderQueue(a, b, c)

	if !q.Delete(b) {
		t.Fatal("Expected Delete(b) to succeed")
	}
	if q.Len() != 2 {
		t.Fatalf("Expected len 2 after delete, got %d", q.Len())
	}
	if q.At(0).ID() != "a" || q.At(1).ID() != "c" {
		t.Errorf("Delete broke arrival order: %s, %s", q.At(0).ID(), q.At(1).ID())
	}

	if q.Delete(b) {
		t.Error("Expected second Delete(b) to report absence")
	}
}

func TestOrderQueueString(t *testing.T) {
	q := NewOrderQueue(limitOrder(t, "a", 1.0), limitOrder(t, "b", 2.0))
	want := "a/1.000, b/2.000"
	if got := q.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
