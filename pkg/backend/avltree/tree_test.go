package avltree

import (
	"math/rand"
	"testing"

	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

func queueAt(t *testing.T, price int) *core.OrderQueue {
	t.Helper()
	order, err := core.NewLimitOrder("o", core.Buy, fpdecimal.FromInt(1), fpdecimal.FromInt(price))
	if err != nil {
		t.Fatalf("NewLimitOrder returned error: %v", err)
	}
	return core.NewOrderQueue(order)
}

func TestTreeEmpty(t *testing.T) {
	tree := NewTree()

	if tree.Size() != 0 {
		t.Errorf("Expected size 0, got %d", tree.Size())
	}
	if tree.Get(fpdecimal.FromInt(100)) != nil {
		t.Error("Expected nil Get on empty tree")
	}
	if _, q := tree.Min(); q != nil {
		t.Error("Expected nil Min on empty tree")
	}
	if _, q := tree.Max(); q != nil {
		t.Error("Expected nil Max on empty tree")
	}
	if tree.Delete(fpdecimal.FromInt(100)) {
		t.Error("Expected Delete on empty tree to report absence")
	}
}

func TestTreeAddGetDelete(t *testing.T) {
	tree := NewTree()
	prices := []int{50, 30, 70, 20, 40, 60, 80}

	for _, p := range prices {
		tree.Add(fpdecimal.FromInt(p), queueAt(t, p))
	}
	if tree.Size() != len(prices) {
		t.Fatalf("Expected size %d, got %d", len(prices), tree.Size())
	}

	for _, p := range prices {
		if tree.Get(fpdecimal.FromInt(p)) == nil {
			t.Errorf("Expected to find price %d", p)
		}
	}
	if tree.Get(fpdecimal.FromInt(55)) != nil {
		t.Error("Expected nil for absent price")
	}

	for i, p := range prices {
		if !tree.Delete(fpdecimal.FromInt(p)) {
			t.Fatalf("Expected Delete(%d) to succeed", p)
		}
		if tree.Size() != len(prices)-i-1 {
			t.Fatalf("Expected size %d after deleting %d, got %d", len(prices)-i-1, p, tree.Size())
		}
	}
}

func TestTreeMinMax(t *testing.T) {
	tree := NewTree()
	for _, p := range []int{50, 30, 70, 20, 80} {
		tree.Add(fpdecimal.FromInt(p), queueAt(t, p))
	}

	minPrice, minQueue := tree.Min()
	if minQueue == nil || !minPrice.Equal(fpdecimal.FromInt(20)) {
		t.Errorf("Expected min 20, got %s", minPrice)
	}

	maxPrice, maxQueue := tree.Max()
	if maxQueue == nil || !maxPrice.Equal(fpdecimal.FromInt(80)) {
		t.Errorf("Expected max 80, got %s", maxPrice)
	}
}

// TestTreeRotations inserts monotone sequences, which degrade to a list
// without rebalancing.
func TestTreeRotations(t *testing.T) {
	ascending := NewTree()
	for p := 1; p <= 64; p++ {
		ascending.Add(fpdecimal.FromInt(p), queueAt(t, p))
	}
	checkBalanced(t, ascending.root)

	descending := NewTree()
	for p := 64; p >= 1; p-- {
		descending.Add(fpdecimal.FromInt(p), queueAt(t, p))
	}
	checkBalanced(t, descending.root)
}

// TestTreeRandomOps drives a seeded mixed workload and cross-checks every
// state against a plain map, including ordering and balance factors.
func TestTreeRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := NewTree()
	reference := map[int]bool{}

	for i := 0; i < 2000; i++ {
		p := rng.Intn(500) + 1
		if rng.Intn(3) == 0 {
			deleted := tree.Delete(fpdecimal.FromInt(p))
			if deleted != reference[p] {
				t.Fatalf("Delete(%d) = %v, reference says %v", p, deleted, reference[p])
			}
			delete(reference, p)
		} else if !reference[p] {
			tree.Add(fpdecimal.FromInt(p), queueAt(t, p))
			reference[p] = true
		}
	}

	if tree.Size() != len(reference) {
		t.Fatalf("Size %d does not match reference %d", tree.Size(), len(reference))
	}

	prev := fpdecimal.Zero
	count := 0
	tree.Ascend(func(price fpdecimal.Decimal, queue *core.OrderQueue) bool {
		if count > 0 && !prev.LessThan(price) {
			t.Fatalf("Ascend out of order: %s then %s", prev, price)
		}
		if queue == nil {
			t.Fatal("Level with nil queue")
		}
		prev = price
		count++
		return true
	})
	if count != len(reference) {
		t.Fatalf("Ascend visited %d levels, expected %d", count, len(reference))
	}

	checkBalanced(t, tree.root)
}

// checkBalanced verifies stored heights are consistent and every balance
// factor stays within [-1, 1].
func checkBalanced(t *testing.T, n *node) int {
	t.Helper()
	if n == nil {
		return 0
	}
	left := checkBalanced(t, n.left)
	right := checkBalanced(t, n.right)
	if h := 1 + max(left, right); n.height != h {
		t.Fatalf("Node %s has stored height %d, actual %d", n.key, n.height, h)
	}
	if b := left - right; b < -1 || b > 1 {
		t.Fatalf("Node %s has balance factor %d", n.key, b)
	}
	return n.height
}
