// Package sortedarr implements the ordered price index as a sorted slice and
// the order book side built on it. Lookups are binary searches; inserts and
// deletes shift the tail. Best price is a direct index, which makes this
// layout competitive when the book stays shallow.
package sortedarr

import (
	"sort"

	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

type level struct {
	price fpdecimal.Decimal
	queue *core.OrderQueue
}

// Index keeps price levels in a slice sorted ascending by price.
type Index struct {
	levels []level
}

// NewIndex constructs an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Size returns the number of price levels
func (x *Index) Size() int { return len(x.levels) }

// Get returns the queue at the exact price, or nil on miss
func (x *Index) Get(price fpdecimal.Decimal) *core.OrderQueue {
	i := x.search(price)
	if i < len(x.levels) && x.levels[i].price.Equal(price) {
		return x.levels[i].queue
	}
	return nil
}

// Add inserts a new price level. The caller must have checked that the key
// is absent; an existing key keeps its queue and the given one is dropped.
func (x *Index) Add(price fpdecimal.Decimal, queue *core.OrderQueue) {
	i := x.search(price)
	if i < len(x.levels) && x.levels[i].price.Equal(price) {
		return
	}
	x.levels = append(x.levels, level{})
	copy(x.levels[i+1:], x.levels[i:])
	x.levels[i] = level{price: price, queue: queue}
}

// Delete removes the level at the given price. Benign no-op on a missing key.
func (x *Index) Delete(price fpdecimal.Decimal) bool {
	i := x.search(price)
	if i >= len(x.levels) || !x.levels[i].price.Equal(price) {
		return false
	}
	copy(x.levels[i:], x.levels[i+1:])
	x.levels[len(x.levels)-1] = level{}
	x.levels = x.levels[:len(x.levels)-1]
	return true
}

// Min returns the queue at the smallest price, or nil when empty
func (x *Index) Min() (fpdecimal.Decimal, *core.OrderQueue) {
	if len(x.levels) == 0 {
		return fpdecimal.Zero, nil
	}
	return x.levels[0].price, x.levels[0].queue
}

// Max returns the queue at the largest price, or nil when empty
func (x *Index) Max() (fpdecimal.Decimal, *core.OrderQueue) {
	if len(x.levels) == 0 {
		return fpdecimal.Zero, nil
	}
	last := x.levels[len(x.levels)-1]
	return last.price, last.queue
}

// Ascend calls fn for every level in ascending price order until fn returns
// false.
func (x *Index) Ascend(fn func(price fpdecimal.Decimal, queue *core.OrderQueue) bool) {
	for _, lvl := range x.levels {
		if !fn(lvl.price, lvl.queue) {
			return
		}
	}
}

// search returns the first position whose price is >= the given price.
func (x *Index) search(price fpdecimal.Decimal) int {
	return sort.Search(len(x.levels), func(i int) bool {
		return x.levels[i].price.GreaterThanOrEqual(price)
	})
}
