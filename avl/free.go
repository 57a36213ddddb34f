// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Free - release every node of the tree
//
// if destructor is not nil it is called once for each item, in
// post-order (left sub-tree, right sub-tree, node) just before the
// node is released.  Afterwards the tree is empty and its storage has
// been dropped; it keeps its key function and comparator.
func (tree *Tree[K, T]) Free(destructor Destructor[T]) {
	tree.freeBranch(tree.root, destructor)
	tree.root = none
	tree.count = 0
	tree.arena = newArena[K, T](0, tree.options.maximum)
}

// internal: post-order release of a sub-tree
func (tree *Tree[K, T]) freeBranch(r ref, destructor Destructor[T]) {
	if none == r {
		return
	}
	p := tree.arena.at(r)
	left := p.left
	right := p.right

	tree.freeBranch(left, destructor)
	tree.freeBranch(right, destructor)

	if nil != destructor {
		destructor(tree.arena.at(r).item)
	}
	tree.arena.release(r)
}
