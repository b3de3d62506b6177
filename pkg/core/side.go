package core

import "github.com/nikolaydubina/fpdecimal"

// BookSide is the contract every order book side variant implements. A side
// is fixed to one Side at construction and owns one ordered price index
// mapping price to the FIFO queue of orders resting there.
//
// Best price is the maximum key for the bid side and the minimum key for the
// ask side. The index never holds an empty price level: the last delete at a
// price removes the level itself.
type BookSide interface {
	// Side returns which side of the book this is
	Side() Side

	// AddOrder appends the order to the level at its price, creating the
	// level if absent. FIFO arrival order within the level is preserved.
	AddOrder(order *Order)

	// GetAllOrders returns every resting order in ascending price order,
	// FIFO within each price. Inspection helper, not on the hot path.
	GetAllOrders() []*Order

	// GetOrderByPrice finds one order by id within the level at price.
	// Returns nil if the level or the id is not found.
	GetOrderByPrice(orderID string, price fpdecimal.Decimal) *Order

	// DeleteOrder removes the given order from its price level, dropping
	// the level when it empties. A missing level is a logged no-op.
	DeleteOrder(order *Order)

	// DeleteOrdersByPrice removes each order in the queue from the level at
	// price, dropping the level when it empties. A missing level is a
	// logged no-op.
	DeleteOrdersByPrice(orders *OrderQueue, price fpdecimal.Decimal)

	// MatchOrdersForPrice returns the best-price queue only when the best
	// price crosses the given one (ask side: best <= price; bid side:
	// best >= price), else an empty queue. Pure query.
	MatchOrdersForPrice(price fpdecimal.Decimal) *OrderQueue

	// BestPriceOrders returns the best-price queue unconditionally; empty
	// queue when the side holds no resting orders. Pure query.
	BestPriceOrders() *OrderQueue

	// Len returns the total number of resting orders
	Len() int

	// Depth returns the number of occupied price levels
	Depth() int

	// String renders a human-readable dump of the side
	String() string
}
