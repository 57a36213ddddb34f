// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// KeyFunc - extract the key from an item, the key must not change
// while the item is in the tree
type KeyFunc[K any, T any] func(item T) K

// Comparator - total order on keys: negative if a < b, zero if a == b
// and positive if a > b
type Comparator[K any] func(a K, b K) int

// Destructor - called for each item when the whole tree is freed
type Destructor[T any] func(item T)

// Tree - type to hold the root node of a tree
type Tree[K any, T any] struct {
	arena   arena[K, T]
	root    ref
	count   int
	getKey  KeyFunc[K, T]
	compare Comparator[K]
	options options
}

// tree creation parameters
type options struct {
	capacity int
	maximum  int
}

// Option - adjusts the parameters of a new tree
type Option func(*options)

// WithCapacity - reserve space for n nodes
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaximumNodes - limit the tree to n nodes, an insert beyond this
// returns fault.ErrAllocationFailed; zero or negative means no limit
func WithMaximumNodes(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maximum = n
	}
}

// New - create an initially empty tree for keys with a natural order
func New[K cmp.Ordered, T any](getKey KeyFunc[K, T], opts ...Option) *Tree[K, T] {
	return NewWithComparator(getKey, cmp.Compare[K], opts...)
}

// NewWithComparator - create an initially empty tree using compare to
// order the keys
func NewWithComparator[K any, T any](getKey KeyFunc[K, T], compare Comparator[K], opts ...Option) *Tree[K, T] {
	if nil == getKey {
		panic("avl: nil key function")
	}
	if nil == compare {
		panic("avl: nil comparator")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K, T]{
		arena:   newArena[K, T](o.capacity, o.maximum),
		root:    none,
		count:   0,
		getKey:  getKey,
		compare: compare,
		options: o,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, T]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, T]) Count() int {
	return tree.count
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K, T]) Height() int {
	return tree.height(tree.root)
}
