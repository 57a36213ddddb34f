// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the item with a specific key
func (tree *Tree[K, T]) Search(key K) (T, bool) {
	r := tree.locate(key)
	if none != r {
		p := tree.arena.at(r)
		if 0 == tree.compare(key, p.key) {
			return p.item, true
		}
	}
	var zero T
	return zero, false
}

// Index - zero based position of a key in the sorted sequence
func (tree *Tree[K, T]) Index(key K) (int, bool) {
	index := 0
	r := tree.root
	for none != r {
		p := tree.arena.at(r)
		switch c := tree.compare(key, p.key); {
		case c < 0:
			r = p.left
		case c > 0:
			index += tree.arena.at(p.left).count + 1
			r = p.right
		default:
			return index + tree.arena.at(p.left).count, true
		}
	}
	return -1, false
}

// Get - the item at a zero based position in the sorted sequence
func (tree *Tree[K, T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= tree.count {
		return zero, false
	}

	r := tree.root
	for none != r {
		p := tree.arena.at(r)
		nl := tree.arena.at(p.left).count
		switch {
		case index < nl:
			r = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			r = p.right
		default:
			return p.item, true
		}
	}
	return zero, false
}

// locate the node holding key, or the node below which key would be
// attached; only an empty tree gives none
func (tree *Tree[K, T]) locate(key K) ref {
	r := tree.root
	if none == r {
		return none
	}
	for {
		p := tree.arena.at(r)
		c := tree.compare(key, p.key)
		switch {
		case c < 0:
			if none == p.left {
				return r
			}
			r = p.left
		case c > 0:
			if none == p.right {
				return r
			}
			r = p.right
		default:
			return r
		}
	}
}
