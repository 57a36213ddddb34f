// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rebalance - restore the AVL condition at a node whose sub-trees are
// both balanced and returns the root of the resulting sub-tree, which
// has taken over the node's place below its parent
//
// the rotation is chosen only from the child heights, with a tie
// giving a single rotation; this is needed after a delete where the
// heavy child can itself be balanced
func (tree *Tree[K, T]) rebalance(r ref) ref {
	p := tree.arena.at(r)
	diff := tree.height(p.right) - tree.height(p.left)

	switch {
	case diff <= -2:
		c := tree.arena.at(p.left)
		if tree.height(c.left) >= tree.height(c.right) {
			return tree.rotateRight(r)
		}
		return tree.rotateLeftRight(r)

	case diff >= 2:
		c := tree.arena.at(p.right)
		if tree.height(c.right) >= tree.height(c.left) {
			return tree.rotateLeft(r)
		}
		return tree.rotateRightLeft(r)

	default:
		tree.update(r)
		return r
	}
}

// rebalance every node from r up to the root
func (tree *Tree[K, T]) rebalanceToRoot(r ref) {
	for none != r {
		up := tree.arena.at(r).up
		tree.rebalance(r)
		r = up
	}
}

// single LL rotation: left child takes the node's place
func (tree *Tree[K, T]) rotateRight(r ref) ref {
	p := tree.arena.at(r)
	parent := p.up
	c := p.left
	p1 := tree.arena.at(c)

	p.left = p1.right
	if none != p.left {
		tree.arena.at(p.left).up = r
	}
	tree.update(r)

	p1.right = r
	p.up = c
	tree.update(c)

	tree.replace(parent, r, c)
	return c
}

// single RR rotation: right child takes the node's place
func (tree *Tree[K, T]) rotateLeft(r ref) ref {
	p := tree.arena.at(r)
	parent := p.up
	c := p.right
	p1 := tree.arena.at(c)

	p.right = p1.left
	if none != p.right {
		tree.arena.at(p.right).up = r
	}
	tree.update(r)

	p1.left = r
	p.up = c
	tree.update(c)

	tree.replace(parent, r, c)
	return c
}

// double LR rotation: right child of the left child takes the node's place
func (tree *Tree[K, T]) rotateLeftRight(r ref) ref {
	p := tree.arena.at(r)
	parent := p.up
	c := p.left
	p1 := tree.arena.at(c)
	g := p1.right
	p2 := tree.arena.at(g)

	p.left = p2.right
	if none != p.left {
		tree.arena.at(p.left).up = r
	}
	tree.update(r)

	p1.right = p2.left
	if none != p1.right {
		tree.arena.at(p1.right).up = c
	}
	tree.update(c)

	p2.right = r
	p.up = g
	p2.left = c
	p1.up = g
	tree.update(g)

	tree.replace(parent, r, g)
	return g
}

// double RL rotation: left child of the right child takes the node's place
func (tree *Tree[K, T]) rotateRightLeft(r ref) ref {
	p := tree.arena.at(r)
	parent := p.up
	c := p.right
	p1 := tree.arena.at(c)
	g := p1.left
	p2 := tree.arena.at(g)

	p.right = p2.left
	if none != p.right {
		tree.arena.at(p.right).up = r
	}
	tree.update(r)

	p1.left = p2.right
	if none != p1.left {
		tree.arena.at(p1.left).up = c
	}
	tree.update(c)

	p2.left = r
	p.up = g
	p2.right = c
	p1.up = g
	tree.update(g)

	tree.replace(parent, r, g)
	return g
}
