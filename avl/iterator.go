// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Cursor - position within a tree for in-order traversal
//
// the cursor only follows the parent and child links, it holds no
// stack; it becomes invalid if the tree is modified
type Cursor[K any, T any] struct {
	tree    *Tree[K, T]
	current ref // none when exhausted
}

// First - start a traversal at the lowest key
func (tree *Tree[K, T]) First() (*Cursor[K, T], T, bool) {
	cursor := &Cursor[K, T]{
		tree:    tree,
		current: tree.first(tree.root),
	}
	item, ok := cursor.Item()
	return cursor, item, ok
}

// Last - start a traversal at the highest key
func (tree *Tree[K, T]) Last() (*Cursor[K, T], T, bool) {
	cursor := &Cursor[K, T]{
		tree:    tree,
		current: tree.last(tree.root),
	}
	item, ok := cursor.Item()
	return cursor, item, ok
}

// Valid - true if the cursor is on a node
func (cursor *Cursor[K, T]) Valid() bool {
	return none != cursor.current
}

// Item - the item at the cursor
func (cursor *Cursor[K, T]) Item() (T, bool) {
	if none == cursor.current {
		var zero T
		return zero, false
	}
	return cursor.tree.arena.at(cursor.current).item, true
}

// Key - the key at the cursor
func (cursor *Cursor[K, T]) Key() (K, bool) {
	if none == cursor.current {
		var zero K
		return zero, false
	}
	return cursor.tree.arena.at(cursor.current).key, true
}

// Next - move to the next highest key and return its item, false if
// no more nodes; an exhausted cursor stays exhausted
func (cursor *Cursor[K, T]) Next() (T, bool) {
	if none == cursor.current {
		var zero T
		return zero, false
	}
	a := &cursor.tree.arena
	r := cursor.current
	p := a.at(r)

	if none != p.right {
		cursor.current = cursor.tree.first(p.right)
		return cursor.Item()
	}

	// climb while coming up from a right branch
	for up := p.up; none != up && a.at(up).right == r; up = a.at(r).up {
		r = up
	}
	cursor.current = a.at(r).up
	return cursor.Item()
}

// Prev - move to the next lowest key and return its item, false if
// no more nodes
func (cursor *Cursor[K, T]) Prev() (T, bool) {
	if none == cursor.current {
		var zero T
		return zero, false
	}
	a := &cursor.tree.arena
	r := cursor.current
	p := a.at(r)

	if none != p.left {
		cursor.current = cursor.tree.last(p.left)
		return cursor.Item()
	}

	// climb while coming up from a left branch
	for up := p.up; none != up && a.at(up).left == r; up = a.at(r).up {
		r = up
	}
	cursor.current = a.at(r).up
	return cursor.Item()
}

// Items - iterator over all items in ascending key order
func (tree *Tree[K, T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cursor, item, ok := tree.First(); ok; item, ok = cursor.Next() {
			if !yield(item) {
				return
			}
		}
	}
}

// All - iterator over all key/item pairs in ascending key order
func (tree *Tree[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for cursor, item, ok := tree.First(); ok; item, ok = cursor.Next() {
			key, _ := cursor.Key()
			if !yield(key, item) {
				return
			}
		}
	}
}
