package splay

import (
	"cmp"
	"fmt"
)

// Config configures a splay tree.
type Config[K any] struct {
	// Compare defines the total order of keys. It returns a negative number
	// if a < b, a positive number if a > b and 0 if both are equal.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return nil
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{cmp: cfg.Compare}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{cmp: cmp.Compare[K]}
}
