// Command demo walks through a small matching session and prints the book
// after each step.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/backend"
	"github.com/ofir-starkware/matching-engine-playground/pkg/bookviz"
	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
	"github.com/ofir-starkware/matching-engine-playground/pkg/logging"
)

func main() {
	logging.Setup(logging.Config{Level: "info", Pretty: true})

	engine, err := backend.NewMatchingEngine(backend.Default)
	if err != nil {
		panic(err)
	}

	// Rest some asks above the market
	mustAddLimit(engine, core.Sell, 10.0, 101.0)
	mustAddLimit(engine, core.Sell, 5.0, 102.0)
	mustAddLimit(engine, core.Sell, 7.0, 102.0)

	// And some bids below it
	mustAddLimit(engine, core.Buy, 8.0, 99.0)
	mustAddLimit(engine, core.Buy, 12.0, 98.0)

	fmt.Println("Book after resting orders:")
	render(engine)

	// A crossing bid sweeps the best ask and rests its remainder
	crossing := mustAddLimit(engine, core.Buy, 15.0, 101.0)
	fmt.Printf("\nCrossing bid %s filled %s of %s, remainder rests\n",
		crossing.ID(),
		crossing.OriginalQty().Sub(crossing.Quantity()),
		crossing.OriginalQty())
	render(engine)

	// A market sell clears the best bids regardless of price
	market, err := core.NewMarketOrder(uuid.NewString(), core.Sell, fpdecimal.FromFloat(10.0))
	if err != nil {
		panic(err)
	}
	if err := engine.AddOrder(market); err != nil {
		panic(err)
	}
	fmt.Println("\nBook after a market sell of 10:")
	render(engine)
}

func mustAddLimit(engine *core.MatchingEngine, side core.Side, quantity, price float64) *core.Order {
	order, err := core.NewLimitOrder(uuid.NewString(), side, fpdecimal.FromFloat(quantity), fpdecimal.FromFloat(price))
	if err != nil {
		panic(err)
	}
	if err := engine.AddOrder(order); err != nil {
		panic(err)
	}
	return order
}

func render(engine *core.MatchingEngine) {
	if err := bookviz.Render(os.Stdout, engine); err != nil {
		panic(err)
	}
}
