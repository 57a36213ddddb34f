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
	ErrHeightExceedsBound = fault.RecordError("height exceeds bound")
	ErrInvalidCount       = fault.InvalidError("count must be greater than zero")
	ErrInvalidInterval    = fault.InvalidError("delete interval must not be negative")
	ErrInvalidKey         = fault.InvalidError("invalid key")
	ErrMissingFileName    = fault.InvalidError("missing file name")
)
