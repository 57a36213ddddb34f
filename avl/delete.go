// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes the node with a specific key from the tree
//
// the item itself is not returned or destroyed, use Search first if
// it is needed
//
// returns:
//   nil                  - node was removed
//   fault.ErrKeyNotFound - no such key, tree unchanged
func (tree *Tree[K, T]) Delete(key K) error {
	q := tree.locate(key)
	if none == q || 0 != tree.compare(key, tree.arena.at(q).key) {
		return fault.ErrKeyNotFound
	}

	start := tree.fillVacancy(q)

	tree.arena.release(q)
	tree.count -= 1

	tree.rebalanceToRoot(start)
	return nil
}

// fillVacancy - unlink q and put a suitable node in its place
//
// returns the lowest node whose sub-tree has changed, from where
// the rebalance must start
func (tree *Tree[K, T]) fillVacancy(q ref) ref {
	p := tree.arena.at(q)
	parent := p.up
	left := p.left
	right := p.right

	// zero or one child: promote the child (possibly empty)
	if none == left {
		tree.replace(parent, q, right)
		return parent
	}
	if none == right {
		tree.replace(parent, q, left)
		return parent
	}

	// two children: splice in the in-order predecessor
	r := tree.last(left)
	pr := tree.arena.at(r)

	if r == left {
		// immediate left child keeps its own left sub-tree
		pr.right = right
		tree.arena.at(right).up = r
		tree.replace(parent, q, r)
		return r
	}

	// detach the predecessor, its left child takes its old place
	rParent := pr.up
	rl := pr.left
	tree.arena.at(rParent).right = rl
	if none != rl {
		tree.arena.at(rl).up = rParent
	}

	pr.left = left
	tree.arena.at(left).up = r
	pr.right = right
	tree.arena.at(right).up = r
	tree.replace(parent, q, r)

	return rParent
}
