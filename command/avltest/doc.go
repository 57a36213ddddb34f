// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltest - interactive exerciser for the avl package
//
// reads commands from standard input, one per line:
//
//   quit           - free the tree and exit
//   list           - list items in key order
//   test           - as list, but also search for each item
//   delete KEY     - search for and delete an item
//   count          - number of items in the tree
//   height         - height of the tree
//   check          - verify all tree invariants
//   print          - display the tree structure
//
// any other line is inserted into the tree.  In "integer" key mode the
// first field of the line must be a decimal integer and is used as the
// key, in "string" mode the whole line is the key.
package main
