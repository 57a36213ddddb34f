// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"avl-cli"}, args...))
	return w.String(), e.String(), err
}

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "items.txt")
	require.Nil(t, os.WriteFile(fileName, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return fileName
}

func TestLoadStrings(t *testing.T) {
	fileName := writeLines(t, "beta", "alpha", "gamma", "alpha", "", "delta")

	out, _, err := runApp(t, "load", fileName)
	require.Nil(t, err, "run")

	var result loadResult
	require.Nil(t, json.Unmarshal([]byte(out), &result), "json: %s", out)

	assert.Equal(t, 4, result.Items, "items")
	assert.Equal(t, 1, result.Duplicates, "duplicates")
	assert.Equal(t, 0, result.Invalid, "invalid")
	assert.Equal(t, 3, result.Height, "height")
	assert.InDelta(t, heightBound(4), result.HeightBound, 1e-9, "bound")
	assert.True(t, result.Balanced, "balanced")
}

func TestLoadIntegers(t *testing.T) {
	fileName := writeLines(t, "10 ten", "2 two", "three", "10 again", "7")

	out, errOut, err := runApp(t, "--verbose", "load", "--integer", fileName)
	require.Nil(t, err, "run")

	var result loadResult
	require.Nil(t, json.Unmarshal([]byte(out), &result), "json: %s", out)

	assert.Equal(t, 3, result.Items, "items")
	assert.Equal(t, 1, result.Duplicates, "duplicates")
	assert.Equal(t, 1, result.Invalid, "invalid")
	assert.Equal(t, 2, result.Height, "height")
	assert.True(t, result.Balanced, "balanced")

	assert.Contains(t, errOut, `line: 3  invalid: "three"`, "verbose invalid")
	assert.Contains(t, errOut, `line: 4  duplicate: "10 again"`, "verbose duplicate")
}

func TestLoadErrors(t *testing.T) {
	_, _, err := runApp(t, "load")
	assert.Equal(t, ErrMissingFileName, err, "missing file name")

	_, _, err = runApp(t, "load", filepath.Join(t.TempDir(), "absent.txt"))
	assert.True(t, os.IsNotExist(err), "absent file: %v", err)
}

func TestSequence(t *testing.T) {
	out, _, err := runApp(t, "sequence", "--count", "1000", "--delete-every", "3")
	require.Nil(t, err, "run")

	var result sequenceResult
	require.Nil(t, json.Unmarshal([]byte(out), &result), "json: %s", out)

	assert.Equal(t, 1000, result.Inserted, "inserted")
	assert.Equal(t, 333, result.Deleted, "deleted")
	assert.Equal(t, 667, result.Items, "items")
	assert.True(t, float64(result.Height) <= result.HeightBound, "height: %d  bound: %f", result.Height, result.HeightBound)
}

func TestSequenceDeleteAll(t *testing.T) {
	m := &metadata{e: &bytes.Buffer{}, w: &bytes.Buffer{}}

	result, err := sequence(50, 1, m)
	require.Nil(t, err, "sequence")
	assert.Equal(t, 0, result.Items, "items")
	assert.Equal(t, 0, result.Height, "height")
}

func TestSequenceErrors(t *testing.T) {
	m := &metadata{e: &bytes.Buffer{}, w: &bytes.Buffer{}}

	_, err := sequence(0, 0, m)
	assert.Equal(t, ErrInvalidCount, err, "zero count")

	_, err = sequence(10, -1, m)
	assert.Equal(t, ErrInvalidInterval, err, "negative interval")
	assert.True(t, fault.IsErrInvalid(err), "invalid class")
}

func TestVersion(t *testing.T) {
	out, _, err := runApp(t, "version")
	require.Nil(t, err, "run")
	assert.Equal(t, version+"\n", out, "version")
}

func TestLeadingInteger(t *testing.T) {
	n, err := leadingInteger("  -12 dozen")
	assert.Nil(t, err, "negative")
	assert.Equal(t, int64(-12), n, "value")

	_, err = leadingInteger("12x")
	assert.Equal(t, ErrInvalidKey, err, "trailing text")

	_, err = leadingInteger("")
	assert.Equal(t, ErrInvalidKey, err, "blank")
}
