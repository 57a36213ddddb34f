// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=main

// Store - the tree operations a session needs, the key is always
// derived from the text given
type Store interface {
	Insert(item string) error
	Search(key string) (string, error)
	Delete(key string) error
	Items() iter.Seq[string]
	Count() int
	Height() int
	Check() error
	Print(w io.Writer) int
	Free() int
}

const (
	keyModeString  = "string"
	keyModeInteger = "integer"
)

// create a store for the configured key mode
func newStore(keyMode string, maximumNodes int) (Store, error) {
	var opts []avl.Option
	if maximumNodes > 0 {
		opts = append(opts, avl.WithMaximumNodes(maximumNodes))
	}

	switch keyMode {
	case keyModeString:
		return &stringStore{
			tree: avl.New(func(s string) string { return s }, opts...),
		}, nil
	case keyModeInteger:
		return &integerStore{
			tree: avl.New(func(s string) int64 {
				n, _ := integerKey(s)
				return n
			}, opts...),
		}, nil
	default:
		return nil, fault.ErrInvalidKeyMode
	}
}

// the whole text is the key
type stringStore struct {
	tree *avl.Tree[string, string]
}

func (s *stringStore) Insert(item string) error {
	return s.tree.Insert(item)
}

func (s *stringStore) Search(key string) (string, error) {
	item, ok := s.tree.Search(key)
	if !ok {
		return "", fault.ErrKeyNotFound
	}
	return item, nil
}

func (s *stringStore) Delete(key string) error {
	return s.tree.Delete(key)
}

func (s *stringStore) Items() iter.Seq[string] { return s.tree.Items() }
func (s *stringStore) Count() int              { return s.tree.Count() }
func (s *stringStore) Height() int             { return s.tree.Height() }
func (s *stringStore) Check() error            { return s.tree.Check() }
func (s *stringStore) Print(w io.Writer) int   { return s.tree.Print(w, true) }

func (s *stringStore) Free() int {
	n := 0
	s.tree.Free(func(string) { n += 1 })
	return n
}

// the leading decimal integer is the key
type integerStore struct {
	tree *avl.Tree[int64, string]
}

// extract the key from the first field of the text
func integerKey(text string) (int64, error) {
	fields := strings.Fields(text)
	if 0 == len(fields) {
		return 0, ErrInvalidKey
	}
	n, err := strconv.ParseInt(fields[0], 10, 64)
	if nil != err {
		return 0, ErrInvalidKey
	}
	return n, nil
}

func (s *integerStore) Insert(item string) error {
	if _, err := integerKey(item); nil != err {
		return err
	}
	return s.tree.Insert(item)
}

func (s *integerStore) Search(key string) (string, error) {
	n, err := integerKey(key)
	if nil != err {
		return "", err
	}
	item, ok := s.tree.Search(n)
	if !ok {
		return "", fault.ErrKeyNotFound
	}
	return item, nil
}

func (s *integerStore) Delete(key string) error {
	n, err := integerKey(key)
	if nil != err {
		return err
	}
	return s.tree.Delete(n)
}

func (s *integerStore) Items() iter.Seq[string] { return s.tree.Items() }
func (s *integerStore) Count() int              { return s.tree.Count() }
func (s *integerStore) Height() int             { return s.tree.Height() }
func (s *integerStore) Check() error            { return s.tree.Check() }
func (s *integerStore) Print(w io.Writer) int   { return s.tree.Print(w, true) }

func (s *integerStore) Free() int {
	n := 0
	s.tree.Free(func(string) { n += 1 })
	return n
}
