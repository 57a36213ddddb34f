// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// ref - index of a node in the tree's arena, zero is the empty sub-tree
type ref uint32

const none ref = 0

// a node in the tree
type node[K any, T any] struct {
	left   ref // left sub-tree
	right  ref // right sub-tree
	up     ref // points to parent node, free list link when unused
	key    K   // key part for ordering
	item   T   // caller's data
	height int // 1 + max(left.height, right.height)
	count  int // nodes in this sub-tree, for indexing
}

// recompute the height and count of a node from its children
func (tree *Tree[K, T]) update(r ref) {
	p := tree.arena.at(r)
	l := tree.arena.at(p.left)
	rt := tree.arena.at(p.right)
	if l.height > rt.height {
		p.height = 1 + l.height
	} else {
		p.height = 1 + rt.height
	}
	p.count = 1 + l.count + rt.count
}

// height of a sub-tree, zero for the empty sub-tree
func (tree *Tree[K, T]) height(r ref) int {
	return tree.arena.at(r).height
}

// make new the child of parent in place of old, or the root if
// parent is empty; new may be empty
func (tree *Tree[K, T]) replace(parent ref, old ref, new ref) {
	if none == parent {
		tree.root = new
	} else {
		p := tree.arena.at(parent)
		if p.left == old {
			p.left = new
		} else {
			p.right = new
		}
	}
	if none != new {
		tree.arena.at(new).up = parent
	}
}

// lowest node in a sub-tree
func (tree *Tree[K, T]) first(r ref) ref {
	if none == r {
		return none
	}
	for p := tree.arena.at(r); none != p.left; p = tree.arena.at(r) {
		r = p.left
	}
	return r
}

// highest node in a sub-tree
func (tree *Tree[K, T]) last(r ref) ref {
	if none == r {
		return none
	}
	for p := tree.arena.at(r); none != p.right; p = tree.arena.at(r) {
		r = p.right
	}
	return r
}
