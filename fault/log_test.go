// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	testingDirName = "testing"
)

func setupTestLogger(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestInitialiseFinalise(t *testing.T) {
	setupTestLogger(t)
	defer teardownTestLogger()

	assert.Nil(t, fault.Initialise(), "first initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")
	assert.Nil(t, fault.Finalise(), "finalise")
	assert.Equal(t, fault.ErrNotInitialised, fault.Finalise(), "second finalise")
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "slot: 7 is corrupt", func() {
		fault.Panicf("slot: %d is corrupt", 7)
	})
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("no error", nil)
	})
	assert.Panics(t, func() {
		fault.PanicIfError("check", fault.ErrBadParent)
	})
}
