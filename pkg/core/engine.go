package core

import (
	"fmt"

	"github.com/nikolaydubina/fpdecimal"
	"github.com/rs/zerolog/log"
)

// SideFactory constructs one BookSide variant for the given side. The
// factory in pkg/backend produces one per configured backend type.
type SideFactory func(side Side) (BookSide, error)

// MatchingEngine implements the continuous double-auction matching
// algorithm over one bid side and one ask side. It is single-threaded by
// design: callers must serialize access externally.
type MatchingEngine struct {
	bids    BookSide
	asks    BookSide
	newSide SideFactory
}

// NewMatchingEngine creates an engine whose sides are built by the given
// factory, once here and again on every Reset.
func NewMatchingEngine(factory SideFactory) (*MatchingEngine, error) {
	bids, err := factory(Buy)
	if err != nil {
		return nil, fmt.Errorf("creating bid side: %w", err)
	}

	asks, err := factory(Sell)
	if err != nil {
		return nil, fmt.Errorf("creating ask side: %w", err)
	}

	return &MatchingEngine{
		bids:    bids,
		asks:    asks,
		newSide: factory,
	}, nil
}

// AddOrder submits an order to the engine. Limit orders match what they can
// and rest any remainder at their price. Market orders match until filled or
// until the opposing book is exhausted.
//
// ErrNoMatchForMarketOrder is returned when a market order still has
// quantity and the opposing side holds no resting orders at all, including
// when earlier iterations of the same call already consumed liquidity. Fills
// applied before the failing check are not rolled back.
func (e *MatchingEngine) AddOrder(order *Order) error {
	switch {
	case order.IsLimitOrder():
		return e.addLimitOrder(order)
	case order.IsMarketOrder():
		return e.addMarketOrder(order)
	default:
		return fmt.Errorf("%w: order type %q", ErrInvalidArgument, order.OrderType())
	}
}

// GetBids returns the live bid side of the book
func (e *MatchingEngine) GetBids() BookSide {
	return e.bids
}

// GetAsks returns the live ask side of the book
func (e *MatchingEngine) GetAsks() BookSide {
	return e.asks
}

// Reset discards all resting orders and rebuilds both sides empty. Used for
// isolation between test scenarios, not recovery.
func (e *MatchingEngine) Reset() {
	// The factory was validated when the engine was constructed.
	e.bids, _ = e.newSide(Buy)
	e.asks, _ = e.newSide(Sell)
}

// VisualizeOrderBook dumps both sides to stdout in human-readable form. No
// format stability is promised.
func (e *MatchingEngine) VisualizeOrderBook() {
	fmt.Printf("------------ %s ------------\n%s\n", e.bids.Side(), e.bids)
	fmt.Printf("------------ %s ------------\n%s\n", e.asks.Side(), e.asks)
}

// LogOrderBookState logs order and level counts for both sides
func (e *MatchingEngine) LogOrderBookState() {
	log.Info().
		Int("bidOrders", e.bids.Len()).
		Int("bidLevels", e.bids.Depth()).
		Int("askOrders", e.asks.Len()).
		Int("askLevels", e.asks.Depth()).
		Msg("order book state")
}

// private methods

func (e *MatchingEngine) addLimitOrder(limitOrder *Order) error {
	if err := e.matchImmediate(limitOrder); err != nil {
		return err
	}

	if limitOrder.Quantity().GreaterThan(fpdecimal.Zero) {
		e.sideFor(limitOrder).AddOrder(limitOrder)
	}

	return nil
}

func (e *MatchingEngine) addMarketOrder(marketOrder *Order) error {
	return e.matchImmediate(marketOrder)
}

// matchImmediate runs the trade loop: find the eligible opposing queue,
// consume from its head, and re-query, since the best price may move once a
// level empties. The loop terminates when the incoming order is filled or no
// eligible queue remains.
func (e *MatchingEngine) matchImmediate(order *Order) error {
	for order.Quantity().GreaterThan(fpdecimal.Zero) {
		matched, err := e.findImmediateTrades(order)
		if err != nil {
			return err
		}
		if matched.Len() == 0 {
			return nil
		}
		e.tradeImmediateOrder(order, matched)
	}
	return nil
}

// findImmediateTrades returns the opposing queue the order may trade
// against right now. For limit orders an empty queue means the book does not
// cross; for market orders an empty opposing side is a hard failure.
func (e *MatchingEngine) findImmediateTrades(order *Order) (*OrderQueue, error) {
	opposing := e.opposingSideFor(order)

	if order.IsLimitOrder() {
		return opposing.MatchOrdersForPrice(order.Price()), nil
	}

	best := opposing.BestPriceOrders()
	if best.Len() == 0 {
		return nil, ErrNoMatchForMarketOrder
	}
	return best, nil
}

// tradeImmediateOrder walks the matched queue from its head, consuming
// quantity. Fully consumed resting orders are collected and removed from the
// opposing side in one batch keyed by the level's price; a partially filled
// resting order keeps its place in the queue.
func (e *MatchingEngine) tradeImmediateOrder(order *Order, matched *OrderQueue) {
	opposing := e.opposingSideFor(order)
	toDelete := NewOrderQueue()

	for i := 0; i < matched.Len(); i++ {
		resting := matched.At(i)

		if order.Quantity().LessThan(resting.Quantity()) {
			resting.DecreaseQuantity(order.Quantity())
			order.SetQuantity(fpdecimal.Zero)
			break
		}

		if order.Quantity().Equal(resting.Quantity()) {
			order.SetQuantity(fpdecimal.Zero)
			resting.SetQuantity(fpdecimal.Zero)
			toDelete.Push(resting)
			break
		}

		order.DecreaseQuantity(resting.Quantity())
		resting.SetQuantity(fpdecimal.Zero)
		toDelete.Push(resting)
	}

	if toDelete.Len() > 0 {
		opposing.DeleteOrdersByPrice(toDelete, toDelete.Front().Price())
	}
}

func (e *MatchingEngine) sideFor(order *Order) BookSide {
	if order.Side() == Buy {
		return e.bids
	}
	return e.asks
}

func (e *MatchingEngine) opposingSideFor(order *Order) BookSide {
	if order.Side() == Buy {
		return e.asks
	}
	return e.bids
}
