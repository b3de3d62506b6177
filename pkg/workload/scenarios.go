package workload

import (
	"strconv"

	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

// Scenario names a price distribution and builds the order stream for it.
type Scenario struct {
	Name     string
	Generate func(g *Generator, n int) ([]*core.Order, error)
}

// Scenarios returns every built-in scenario in display order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "Completely Distinct Prices", Generate: completelyDistinctPrices},
		{Name: "Prices in Normal Distribution", Generate: pricesInNormalDistribution},
		{Name: "Perfectly Matched Distinct Prices", Generate: perfectlyMatchedDistinctPrices},
		{Name: "Perfectly Matched Same Price", Generate: perfectlyMatchedSamePrice},
		{Name: "75% Asks Same Price", Generate: mostlyAsksSamePrice},
	}
}

// ScenarioByName finds a scenario by its exact name.
func ScenarioByName(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// completelyDistinctPrices rests n/2 bids below n/2 asks with an offset wide
// enough that nothing ever crosses.
func completelyDistinctPrices(g *Generator, n int) ([]*core.Order, error) {
	orders := make([]*core.Order, 0, n)
	for i := 0; i < n/2; i++ {
		order, err := core.NewLimitOrder(strconv.Itoa(i), core.Buy, g.RandomSize(), g.RandomPrice())
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	for i := 0; i < n/2; i++ {
		price := g.RandomPrice().Add(fpdecimal.FromInt(g.cfg.AskOffset))
		order, err := core.NewLimitOrder(strconv.Itoa(n+i), core.Sell, g.RandomSize(), price)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// pricesInNormalDistribution interleaves both sides around a tight mean, so
// the stream crosses constantly.
func pricesInNormalDistribution(g *Generator, n int) ([]*core.Order, error) {
	orders := make([]*core.Order, 0, n)
	for i := 0; i < n; i++ {
		order, err := core.NewLimitOrder(strconv.Itoa(i), g.RandomSide(), g.RandomSize(), g.RandomNormalPrice())
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// perfectlyMatchedDistinctPrices rests one bid per price, then sends an ask
// at each of those prices, so every ask fully clears one bid.
func perfectlyMatchedDistinctPrices(g *Generator, n int) ([]*core.Order, error) {
	one := fpdecimal.FromInt(1)
	orders := make([]*core.Order, 0, n)
	for i := 0; i < n/2; i++ {
		order, err := core.NewLimitOrder(strconv.Itoa(i), core.Buy, one, fpdecimal.FromInt(i+1))
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	for i := 0; i < n/2; i++ {
		order, err := core.NewLimitOrder(strconv.Itoa(n+i), core.Sell, one, fpdecimal.FromInt(i+1))
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// perfectlyMatchedSamePrice piles both sides onto a single level, exercising
// the FIFO queue rather than the price index.
func perfectlyMatchedSamePrice(g *Generator, n int) ([]*core.Order, error) {
	one := fpdecimal.FromInt(1)
	price := fpdecimal.FromInt(100)
	orders := make([]*core.Order, 0, n)
	for i := 0; i < n/2; i++ {
		order, err := core.NewLimitOrder(strconv.Itoa(i), core.Buy, one, price)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	for i := 0; i < n/2; i++ {
		order, err := core.NewLimitOrder(strconv.Itoa(n+i), core.Sell, one, price)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// mostlyAsksSamePrice sends a 3:1 ask-heavy stream at one price, so bids
// clear instantly and asks accumulate.
func mostlyAsksSamePrice(g *Generator, n int) ([]*core.Order, error) {
	one := fpdecimal.FromInt(1)
	price := fpdecimal.FromInt(100)
	orders := make([]*core.Order, 0, n)
	for i := 0; i < n; i++ {
		order, err := core.NewLimitOrder(strconv.Itoa(i), g.MostlyAsks(), one, price)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
