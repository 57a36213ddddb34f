// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avltree/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidDataDirectory = fault.InvalidError("invalid data directory")
	ErrInvalidKey           = fault.InvalidError("invalid key")
	ErrInvalidMaximumNodes  = fault.InvalidError("invalid maximum nodes")
	ErrNotADirectory        = fault.InvalidError("not a directory")
	ErrNotPlainName         = fault.InvalidError("not a plain file name")
)
