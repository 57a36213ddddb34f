// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes without a stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  A cursor must not be used after the tree it came
//       from has been modified.
//
// The tree holds caller owned items, the key of each item is obtained
// from a key function given when the tree is created.  Keys are
// unique, an insert with an existing key is rejected and the tree is
// left unchanged.
//
// Each node records the height of its sub-tree and the tree is
// rebalanced on the way back to the root after every insert or
// delete, so the height never exceeds about 1.44·log2(n).  Nodes are
// held in an arena and linked by index, a deleted node's slot is
// reused by the next insert.
package avl
