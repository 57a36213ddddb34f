// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new item into the tree
//
// returns:
//   nil                       - item was added
//   fault.ErrDuplicateKey     - key already present, tree unchanged
//                               and the item remains the caller's
//   fault.ErrAllocationFailed - no node available, tree unchanged
func (tree *Tree[K, T]) Insert(item T) error {
	key := tree.getKey(item)

	p := tree.locate(key)
	c := 0
	if none != p {
		c = tree.compare(key, tree.arena.at(p).key)
		if 0 == c {
			return fault.ErrDuplicateKey
		}
	}

	// no node pointers are held across this
	n, err := tree.arena.allocate(key, item)
	if nil != err {
		return err
	}
	tree.count += 1

	if none == p {
		tree.root = n
		return nil
	}

	tree.arena.at(n).up = p
	if c < 0 {
		tree.arena.at(p).left = n
	} else {
		tree.arena.at(p).right = n
	}

	// p cannot be out of balance, so this starts by updating its height
	tree.rebalanceToRoot(p)
	return nil
}
