package core

import "errors"

// Errors
var (
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrNoMatchForMarketOrder = errors.New("no match found for market order")
	ErrUnsupportedBackend    = errors.New("backend not supported")
)
