// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, the
// root is on the left and higher keys are above lower ones
//
// returns the maximum depth of the tree
func (tree *Tree[K, T]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree[K, T]) printTree(w io.Writer, r ref, prefix string, br branch, printData bool) int {
	if none == r {
		return 0
	}
	p := tree.arena.at(r)
	rd := 0
	ld := 0
	if none != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if none != p.up {
		up = tree.arena.at(p.up).key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v h:%d/n:%d\n", p.key, p.item, up, p.height, p.count)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, up)
	}
	if none != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left, printData)
	}
	return 1 + max(rd, ld)
}
