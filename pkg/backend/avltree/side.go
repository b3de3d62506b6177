package avltree

import (
	"fmt"
	"strings"

	"github.com/nikolaydubina/fpdecimal"
	"github.com/rs/zerolog/log"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

// BookSide is the order book side backed by the AVL tree index.
type BookSide struct {
	side  core.Side
	tree  *Tree
	count int
}

// NewBookSide creates an empty side fixed to the given Side.
func NewBookSide(side core.Side) *BookSide {
	return &BookSide{
		side: side,
		tree: NewTree(),
	}
}

// Side returns which side of the book this is
func (s *BookSide) Side() core.Side {
	return s.side
}

// AddOrder appends the order to the level at its price, creating the level
// if absent.
func (s *BookSide) AddOrder(order *core.Order) {
	if queue := s.tree.Get(order.Price()); queue != nil {
		queue.Push(order)
	} else {
		s.tree.Add(order.Price(), core.NewOrderQueue(order))
	}
	s.count++
}

// GetAllOrders returns every resting order, ascending price then arrival.
func (s *BookSide) GetAllOrders() []*core.Order {
	orders := make([]*core.Order, 0, s.count)
	s.tree.Ascend(func(_ fpdecimal.Decimal, queue *core.OrderQueue) bool {
		orders = append(orders, queue.Orders()...)
		return true
	})
	return orders
}

// GetOrderByPrice finds one order by id within the level at price. The scan
// inside the level is linear; levels are expected to stay shallow.
func (s *BookSide) GetOrderByPrice(orderID string, price fpdecimal.Decimal) *core.Order {
	queue := s.tree.Get(price)
	if queue == nil {
		return nil
	}
	return queue.Find(orderID)
}

// DeleteOrder removes the order from its price level, dropping the level
// when it empties.
func (s *BookSide) DeleteOrder(order *core.Order) {
	queue := s.tree.Get(order.Price())
	if queue == nil {
		warnMissingLevel(s.side, order.Price())
		return
	}

	if queue.Delete(order) {
		s.count--
	}

	if queue.Len() == 0 {
		s.tree.Delete(order.Price())
	}
}

// DeleteOrdersByPrice removes each order in the given queue from the level
// at price, then drops the level if it emptied.
func (s *BookSide) DeleteOrdersByPrice(orders *core.OrderQueue, price fpdecimal.Decimal) {
	queue := s.tree.Get(price)
	if queue == nil {
		warnMissingLevel(s.side, price)
		return
	}

	for _, order := range orders.Orders() {
		if queue.Delete(order) {
			s.count--
		}
	}

	if queue.Len() == 0 {
		s.tree.Delete(price)
	}
}

// MatchOrdersForPrice returns the best-price queue when it crosses the given
// price, else an empty queue.
func (s *BookSide) MatchOrdersForPrice(price fpdecimal.Decimal) *core.OrderQueue {
	bestPrice, queue := s.best()
	if queue == nil {
		return core.NewOrderQueue()
	}

	if s.side == core.Sell && bestPrice.GreaterThan(price) {
		return core.NewOrderQueue()
	}
	if s.side == core.Buy && bestPrice.LessThan(price) {
		return core.NewOrderQueue()
	}
	return queue
}

// BestPriceOrders returns the best-price queue, empty when no orders rest.
func (s *BookSide) BestPriceOrders() *core.OrderQueue {
	_, queue := s.best()
	if queue == nil {
		return core.NewOrderQueue()
	}
	return queue
}

// Len returns the total number of resting orders
func (s *BookSide) Len() int {
	return s.count
}

// Depth returns the number of occupied price levels
func (s *BookSide) Depth() int {
	return s.tree.Size()
}

// String implements fmt.Stringer interface
func (s *BookSide) String() string {
	sb := strings.Builder{}
	s.tree.Ascend(func(price fpdecimal.Decimal, queue *core.OrderQueue) bool {
		fmt.Fprintf(&sb, "%s -> [%s]\n", price, queue)
		return true
	})
	return sb.String()
}

// best is the min key for asks and the max key for bids.
func (s *BookSide) best() (fpdecimal.Decimal, *core.OrderQueue) {
	if s.side == core.Sell {
		return s.tree.Min()
	}
	return s.tree.Max()
}

func warnMissingLevel(side core.Side, price fpdecimal.Decimal) {
	log.Warn().
		Str("side", side.String()).
		Str("price", price.String()).
		Msg("no orders found at price")
}
