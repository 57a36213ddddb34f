// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func TestIntegerKey(t *testing.T) {
	tests := []struct {
		text string
		key  int64
		err  error
	}{
		{"42", 42, nil},
		{"  -7 negative", -7, nil},
		{"+3\tplus", 3, nil},
		{"", 0, ErrInvalidKey},
		{"   ", 0, ErrInvalidKey},
		{"12abc", 0, ErrInvalidKey},
		{"abc 12", 0, ErrInvalidKey},
		{"99999999999999999999", 0, ErrInvalidKey},
	}

	for i, item := range tests {
		key, err := integerKey(item.text)
		assert.Equal(t, item.err, err, "%d: %q error", i, item.text)
		assert.Equal(t, item.key, key, "%d: %q key", i, item.text)
	}
}

func TestNewStore(t *testing.T) {
	_, err := newStore("binary", 0)
	assert.Equal(t, fault.ErrInvalidKeyMode, err, "bad mode")

	s, err := newStore(keyModeInteger, 0)
	assert.Nil(t, err, "integer")
	assert.IsType(t, &integerStore{}, s, "integer store type")

	s, err = newStore(keyModeString, 0)
	assert.Nil(t, err, "string")
	assert.IsType(t, &stringStore{}, s, "string store type")
}

func TestStoreFree(t *testing.T) {
	for _, mode := range []string{keyModeString, keyModeInteger} {
		s, err := newStore(mode, 0)
		assert.Nil(t, err, mode)

		for _, item := range []string{"3 c", "1 a", "2 b"} {
			assert.Nil(t, s.Insert(item), "%s: insert %q", mode, item)
		}
		assert.Equal(t, 3, s.Count(), "%s: count", mode)
		assert.Equal(t, 2, s.Height(), "%s: height", mode)
		assert.Nil(t, s.Check(), "%s: check", mode)

		assert.Equal(t, 3, s.Free(), "%s: freed", mode)
		assert.Equal(t, 0, s.Count(), "%s: count after free", mode)
	}
}
