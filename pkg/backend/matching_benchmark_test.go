package backend

import (
	"fmt"
	"testing"

	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

// BenchmarkRestingLimitOrders measures insert cost when nothing crosses, so
// the ordered index dominates.
func BenchmarkRestingLimitOrders(b *testing.B) {
	for _, backendType := range Types() {
		b.Run(string(backendType), func(b *testing.B) {
			engine, err := NewMatchingEngine(backendType)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				price := fpdecimal.FromInt(i%1000 + 1)
				order, _ := core.NewLimitOrder(fmt.Sprintf("bid-%d", i), core.Buy, fpdecimal.FromInt(1), price)
				_ = engine.AddOrder(order)
			}
		})
	}
}

// BenchmarkCrossingLimitOrders measures matched pairs: each ask fully clears
// the bid submitted just before it.
func BenchmarkCrossingLimitOrders(b *testing.B) {
	for _, backendType := range Types() {
		b.Run(string(backendType), func(b *testing.B) {
			engine, err := NewMatchingEngine(backendType)
			if err != nil {
				b.Fatal(err)
			}
			price := fpdecimal.FromInt(100)
			qty := fpdecimal.FromInt(1)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				bid, _ := core.NewLimitOrder(fmt.Sprintf("bid-%d", i), core.Buy, qty, price)
				_ = engine.AddOrder(bid)
				ask, _ := core.NewLimitOrder(fmt.Sprintf("ask-%d", i), core.Sell, qty, price)
				_ = engine.AddOrder(ask)
			}
		})
	}
}

// BenchmarkMarketOrderMatching measures the market path against a deep book
// that is replenished as it is consumed.
func BenchmarkMarketOrderMatching(b *testing.B) {
	for _, backendType := range Types() {
		b.Run(string(backendType), func(b *testing.B) {
			engine, err := NewMatchingEngine(backendType)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < 100; i++ {
				price := fpdecimal.FromFloat(100.0 + float64(i)*0.1)
				ask, _ := core.NewLimitOrder(fmt.Sprintf("ask-%d", i), core.Sell, fpdecimal.FromInt(1000), price)
				_ = engine.AddOrder(ask)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				market, _ := core.NewMarketOrder(fmt.Sprintf("mkt-%d", i), core.Buy, fpdecimal.FromInt(1))
				if err := engine.AddOrder(market); err != nil {
					b.StopTimer()
					replenish(engine, i)
					b.StartTimer()
				}
			}
		})
	}
}

func replenish(engine *core.MatchingEngine, round int) {
	for i := 0; i < 100; i++ {
		price := fpdecimal.FromFloat(100.0 + float64(i)*0.1)
		ask, _ := core.NewLimitOrder(fmt.Sprintf("ask-r%d-%d", round, i), core.Sell, fpdecimal.FromInt(1000), price)
		_ = engine.AddOrder(ask)
	}
}
