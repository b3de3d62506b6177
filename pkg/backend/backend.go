// Package backend selects a concrete order book side implementation by name
// and wires it into a matching engine.
package backend

import (
	"fmt"

	"github.com/ofir-starkware/matching-engine-playground/pkg/backend/avltree"
	"github.com/ofir-starkware/matching-engine-playground/pkg/backend/rbtree"
	"github.com/ofir-starkware/matching-engine-playground/pkg/backend/sortedarr"
	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

// Type identifies an ordered price index implementation.
type Type string

const (
	RedBlackTree Type = "redblack"
	AVLTree      Type = "avl"
	SortedArray  Type = "sortedarray"
)

// Default is the backend used when no explicit choice is made.
const Default = RedBlackTree

// Types lists every supported backend, in benchmark display order.
func Types() []Type {
	return []Type{RedBlackTree, AVLTree, SortedArray}
}

// ParseType validates a backend name from config or flags.
func ParseType(name string) (Type, error) {
	switch t := Type(name); t {
	case RedBlackTree, AVLTree, SortedArray:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnsupportedBackend, name)
	}
}

// NewBookSide creates one side of the book on the given backend.
func NewBookSide(t Type, side core.Side) (core.BookSide, error) {
	switch t {
	case RedBlackTree:
		return rbtree.NewBookSide(side), nil
	case AVLTree:
		return avltree.NewBookSide(side), nil
	case SortedArray:
		return sortedarr.NewBookSide(side), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedBackend, t)
	}
}

// Factory returns a side factory bound to the given backend type.
func Factory(t Type) core.SideFactory {
	return func(side core.Side) (core.BookSide, error) {
		return NewBookSide(t, side)
	}
}

// NewMatchingEngine creates an engine with both sides on the given backend.
func NewMatchingEngine(t Type) (*core.MatchingEngine, error) {
	if _, err := ParseType(string(t)); err != nil {
		return nil, err
	}
	return core.NewMatchingEngine(Factory(t))
}
