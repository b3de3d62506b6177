// Package rbtree implements the red-black tree ordered price index and the
// order book side built on it. This is the default backend.
package rbtree

import (
	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

type color uint8

const (
	red   color = 0
	black color = 1
)

type node struct {
	key    fpdecimal.Decimal
	queue  *core.OrderQueue
	color  color
	left   *node
	right  *node
	parent *node
}

// Tree is a red-black tree mapping price to the FIFO queue resting there.
// Add/Get/Delete/Min/Max are O(log n).
type Tree struct {
	root *node
	nil  *node // sentinel (black)
	size int
}

// NewTree constructs an empty tree with a black sentinel.
func NewTree() *Tree {
	nilNode := &node{color: black}
	return &Tree{
		root: nilNode,
		nil:  nilNode,
	}
}

// Size returns the number of price levels
func (t *Tree) Size() int { return t.size }

// Get returns the queue at the exact price, or nil on miss
func (t *Tree) Get(price fpdecimal.Decimal) *core.OrderQueue {
	n := t.root
	for n != t.nil {
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
	y := t.nil
	x := t.root
	for x != t.nil {
		y = x
		if price.LessThan(x.key) {
			x = x.left
		} else if price.GreaterThan(x.key) {
			x = x.right
		} else {
			return
		}
	}

	z := &node{
		key:    price,
		queue:  queue,
		color:  red,
		left:   t.nil,
		right:  t.nil,
		parent: y,
	}

	if y == t.nil {
		t.root = z
	} else if z.key.LessThan(y.key) {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
}

// Delete removes the level at the given price. Benign no-op on a missing key.
func (t *Tree) Delete(price fpdecimal.Decimal) bool {
	z := t.searchNode(price)
	if z == t.nil {
		return false
	}
	t.deleteNode(z)
	t.size--
	return true
}

// Min returns the queue at the smallest price, or nil when empty
func (t *Tree) Min() (fpdecimal.Decimal, *core.OrderQueue) {
	n := t.minNode(t.root)
	if n == t.nil {
		return fpdecimal.Zero, nil
	}
	return n.key, n.queue
}

// Max returns the queue at the largest price, or nil when empty
func (t *Tree) Max() (fpdecimal.Decimal, *core.OrderQueue) {
	n := t.maxNode(t.root)
	if n == t.nil {
		return fpdecimal.Zero, nil
	}
	return n.key, n.queue
}

// Ascend calls fn for every level in ascending price order until fn returns
// false.
func (t *Tree) Ascend(fn func(price fpdecimal.Decimal, queue *core.OrderQueue) bool) {
	for n := t.minNode(t.root); n != t.nil; n = t.next(n) {
		if !fn(n.key, n.queue) {
			return
		}
	}
}

/******************** Internal helpers ********************/

func (t *Tree) searchNode(price fpdecimal.Decimal) *node {
	n := t.root
	for n != t.nil {
		if price.LessThan(n.key) {
			n = n.left
		} else if price.GreaterThan(n.key) {
			n = n.right
		} else {
			return n
		}
	}
	return t.nil
}

func (t *Tree) minNode(n *node) *node {
	if n == t.nil {
		return t.nil
	}
	for n.left != t.nil {
		n = n.left
	}
	return n
}

func (t *Tree) maxNode(n *node) *node {
	if n == t.nil {
		return t.nil
	}
	for n.right != t.nil {
		n = n.right
	}
	return n
}

func (t *Tree) next(n *node) *node {
	if n == nil || n == t.nil {
		return t.nil
	}
	if n.right != t.nil {
		return t.minNode(n.right)
	}
	p := n.parent
	for p != t.nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *Tree) leftRotate(x *node) {
	y := x.right
	x.right = y.left
	if y.left != t.nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree) rightRotate(y *node) {
	x := y.left
	y.left = x.right
	if x.right != t.nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *Tree) insertFixup(z *node) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *Tree) transplant(u, v *node) {
	if u.parent == t.nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree) deleteNode(z *node) {
	y := z
	yOrigColor := y.color
	var x *node

	if z.left == t.nil {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nil {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == black {
		t.deleteFixup(x)
	}
}

func (t *Tree) deleteFixup(x *node) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
