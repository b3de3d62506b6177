package core

import (
	"strings"

	"github.com/gammazero/deque"
)

// OrderQueue is the FIFO queue of limit orders resting at one price level.
// Arrival order is preserved; matching always consumes from the front.
type OrderQueue struct {
	orders deque.Deque[*Order]
}

// NewOrderQueue creates an OrderQueue seeded with the given orders, in order.
func NewOrderQueue(orders ...*Order) *OrderQueue {
	q := &OrderQueue{}
	for _, o := range orders {
		q.orders.PushBack(o)
	}
	return q
}

// Len returns the number of orders in the queue
func (q *OrderQueue) Len() int {
	return q.orders.Len()
}

// Push appends an order at the back of the queue
func (q *OrderQueue) Push(order *Order) {
	q.orders.PushBack(order)
}

// At returns the order at position i, front first
func (q *OrderQueue) At(i int) *Order {
	return q.orders.At(i)
}

// Front returns the oldest order, or nil if the queue is empty
func (q *OrderQueue) Front() *Order {
	if q.orders.Len() == 0 {
		return nil
	}
	return q.orders.Front()
}

// Find returns the order with the given id, or nil if not present.
// Linear scan; levels are expected to stay shallow.
func (q *OrderQueue) Find(orderID string) *Order {
	i := q.orders.Index(func(o *Order) bool { return o.ID() == orderID })
	if i < 0 {
		return nil
	}
	return q.orders.At(i)
}

// Delete removes the order with the matching id from the queue. Returns
// false if the order was not present.
func (q *OrderQueue) Delete(order *Order) bool {
	i := q.orders.Index(func(o *Order) bool { return o.ID() == order.ID() })
	if i < 0 {
		return false
	}
	q.orders.Remove(i)
	return true
}

// Orders returns a snapshot slice of the queue, front first
func (q *OrderQueue) Orders() []*Order {
	out := make([]*Order, 0, q.orders.Len())
	for i := 0; i < q.orders.Len(); i++ {
		out = append(out, q.orders.At(i))
	}
	return out
}

// String implements fmt.Stringer interface
func (q *OrderQueue) String() string {
	sb := strings.Builder{}
	for i := 0; i < q.orders.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		o := q.orders.At(i)
		sb.WriteString(o.ID())
		sb.WriteString("/")
		sb.WriteString(o.Quantity().String())
	}
	return sb.String()
}
