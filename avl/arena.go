// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// slot zero is never allocated, it stands for the empty sub-tree and
// must keep zero height and count
type arena[K any, T any] struct {
	nodes     []node[K, T]
	pool      ref // linked list of reclaimed slots
	freeNodes int // number of slots in the pool
	maximum   int // maximum live nodes, zero for no limit
}

func newArena[K any, T any](capacity int, maximum int) arena[K, T] {
	if capacity < 0 {
		capacity = 0
	}
	if maximum > 0 && capacity > maximum {
		capacity = maximum
	}
	a := arena[K, T]{
		nodes:   make([]node[K, T], 1, capacity+1),
		maximum: maximum,
	}
	return a
}

// access a slot, only valid until the next allocate
func (a *arena[K, T]) at(r ref) *node[K, T] {
	return &a.nodes[r]
}

// number of slots holding tree nodes
func (a *arena[K, T]) live() int {
	return len(a.nodes) - 1 - a.freeNodes
}

// allocate a new node, reuses reclaimed slots if any are available
func (a *arena[K, T]) allocate(key K, item T) (ref, error) {
	if a.maximum > 0 && a.live() >= a.maximum {
		return none, fault.ErrAllocationFailed
	}

	if none == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("avl: pool corrupt: %d free nodes with empty pool", a.freeNodes)
		}
		if uint64(len(a.nodes)) > math.MaxUint32 {
			return none, fault.ErrAllocationFailed
		}
		a.nodes = append(a.nodes, node[K, T]{
			key:    key,
			item:   item,
			height: 1,
			count:  1,
		})
		return ref(len(a.nodes) - 1), nil
	}

	r := a.pool
	p := &a.nodes[r]
	if 0 != p.height {
		fault.Panicf("avl: pool corrupt: slot: %d is still in use", r)
	}
	a.pool = p.up
	*p = node[K, T]{
		key:    key,
		item:   item,
		height: 1,
		count:  1,
	}
	a.freeNodes -= 1
	return r, nil
}

// reclaim a node slot and keep it in the pool
func (a *arena[K, T]) release(r ref) {
	if none == r {
		fault.Panicf("avl: attempt to release the empty sub-tree")
	}
	p := &a.nodes[r]
	*p = node[K, T]{ // clear references to caller's key and item
		up: a.pool, // use as free list pointer
	}
	a.freeNodes += 1
	a.pool = r
}

