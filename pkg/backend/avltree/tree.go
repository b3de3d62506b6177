// Package avltree implements the AVL tree ordered price index and the order
// book side built on it. Contract-identical to the red-black backend; only
// the balancing strategy differs.
package avltree

import (
	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

type node struct {
	key    fpdecimal.Decimal
	queue  *core.OrderQueue
	height int
	left   *node
	right  *node
}

// Tree is an AVL tree mapping price to the FIFO queue resting there.
// Add/Get/Delete/Min/Max are O(log n).
type Tree struct {
	root *node
	size int
}

// NewTree constructs an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Size returns the number of price levels
func (t *Tree) Size() int { return t.size }

// Get returns the queue at the exact price, or nil on miss
func (t *Tree) Get(price fpdecimal.Decimal) *core.OrderQueue {
	n := t.root
	for n != nil {
		if price.LessThan(n.key) {
			n = n.left
		} else if price.GreaterThan(n.key) {
			n = n.right
		} else {
			return n.queue
		}
	}
	return nil
}

// Add inserts a new price level. The caller must have checked that the key
// is absent; an existing key keeps its queue and the given one is dropped.
func (t *Tree) Add(price fpdecimal.Decimal, queue *core.OrderQueue) {
	var inserted bool
	t.root, inserted = insert(t.root, price, queue)
	if inserted {
		t.size++
	}
}

// Delete removes the level at the given price. Benign no-op on a missing key.
func (t *Tree) Delete(price fpdecimal.Decimal) bool {
	var deleted bool
	t.root, deleted = remove(t.root, price)
	if deleted {
		t.size--
	}
	return deleted
}

// Min returns the queue at the smallest price, or nil when empty
func (t *Tree) Min() (fpdecimal.Decimal, *core.OrderQueue) {
	if t.root == nil {
		return fpdecimal.Zero, nil
	}
	n := minNode(t.root)
	return n.key, n.queue
}

// Max returns the queue at the largest price, or nil when empty
func (t *Tree) Max() (fpdecimal.Decimal, *core.OrderQueue) {
	if t.root == nil {
		return fpdecimal.Zero, nil
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.queue
}

// Ascend calls fn for every level in ascending price order until fn returns
// false.
func (t *Tree) Ascend(fn func(price fpdecimal.Decimal, queue *core.OrderQueue) bool) {
	ascend(t.root, fn)
}

/******************** Internal helpers ********************/

func ascend(n *node, fn func(fpdecimal.Decimal, *core.OrderQueue) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.key, n.queue) {
		return false
	}
	return ascend(n.right, fn)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance(n *node) int {
	return height(n.left) - height(n.right)
}

func (n *node) recalc() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	y.recalc()
	x.recalc()
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	x.recalc()
	y.recalc()
	return y
}

func rebalance(n *node) *node {
	n.recalc()
	b := balance(n)
	if b > 1 {
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	if b < -1 {
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

func insert(n *node, key fpdecimal.Decimal, queue *core.OrderQueue) (*node, bool) {
	if n == nil {
		return &node{key: key, queue: queue, height: 1}, true
	}

	var inserted bool
	if key.LessThan(n.key) {
		n.left, inserted = insert(n.left, key, queue)
	} else if key.GreaterThan(n.key) {
		n.right, inserted = insert(n.right, key, queue)
	} else {
		return n, false
	}

	return rebalance(n), inserted
}

func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func remove(n *node, key fpdecimal.Decimal) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var deleted bool
	if key.LessThan(n.key) {
		n.left, deleted = remove(n.left, key)
	} else if key.GreaterThan(n.key) {
		n.right, deleted = remove(n.right, key)
	} else {
		deleted = true
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := minNode(n.right)
		n.key = succ.key
		n.queue = succ.queue
		n.right, _ = remove(n.right, succ.key)
	}

	return rebalance(n), deleted
}
