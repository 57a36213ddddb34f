// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the parent links, key order, heights, balance and
// node counts of the whole tree
func (tree *Tree[K, T]) Check() error {
	_, count, err := tree.check(tree.root, none, nil, nil)
	if nil != err {
		return err
	}
	if count != tree.count {
		return fmt.Errorf("%w: tree: %d  nodes: %d", fault.ErrBadCount, tree.count, count)
	}
	if count != tree.arena.live() {
		return fmt.Errorf("%w: arena: %d  nodes: %d", fault.ErrBadCount, tree.arena.live(), count)
	}
	return nil
}

// internal: consistency checker, lower and upper are the exclusive
// key bounds for the sub-tree (nil if unbounded)
//
// returns height and node count of the sub-tree
func (tree *Tree[K, T]) check(r ref, up ref, lower *K, upper *K) (int, int, error) {
	if none == r {
		return 0, 0, nil
	}
	p := tree.arena.at(r)

	if p.up != up {
		return 0, 0, fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrBadParent, p.key, p.up, up)
	}
	if nil != lower && tree.compare(*lower, p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: node: %v  not above: %v", fault.ErrBadOrder, p.key, *lower)
	}
	if nil != upper && tree.compare(p.key, *upper) >= 0 {
		return 0, 0, fmt.Errorf("%w: node: %v  not below: %v", fault.ErrBadOrder, p.key, *upper)
	}

	key := p.key
	lh, lc, err := tree.check(p.left, r, lower, &key)
	if nil != err {
		return 0, 0, err
	}
	rh, rc, err := tree.check(p.right, r, &key, upper)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + max(lh, rh)
	if p.height != h {
		return 0, 0, fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrBadHeight, p.key, p.height, h)
	}
	if diff := rh - lh; diff < -1 || diff > 1 {
		return 0, 0, fmt.Errorf("%w: node: %v  left: %d  right: %d", fault.ErrBadBalance, p.key, lh, rh)
	}
	c := 1 + lc + rc
	if p.count != c {
		return 0, 0, fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrBadCount, p.key, p.count, c)
	}
	return h, c, nil
}
