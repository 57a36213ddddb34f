// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type loadResult struct {
	Items       int     `json:"items"`
	Duplicates  int     `json:"duplicates"`
	Invalid     int     `json:"invalid"`
	Height      int     `json:"height"`
	HeightBound float64 `json:"heightBound"`
	Balanced    bool    `json:"balanced"`
}

func runLoad(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.Args().First()
	if "" == fileName {
		return ErrMissingFileName
	}

	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	var result *loadResult
	if c.Bool("integer") {
		result, err = loadIntegers(f, m)
	} else {
		result, err = loadStrings(f, m)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, result)
}

func loadStrings(r io.Reader, m *metadata) (*loadResult, error) {
	tree := avl.New(func(s string) string { return s })
	return load(r, m, tree, func(string) error { return nil })
}

func loadIntegers(r io.Reader, m *metadata) (*loadResult, error) {
	tree := avl.New(func(s string) int64 {
		n, _ := leadingInteger(s)
		return n
	})
	return load(r, m, tree, func(s string) error {
		_, err := leadingInteger(s)
		return err
	})
}

// the first field of the line as a decimal integer
func leadingInteger(s string) (int64, error) {
	fields := strings.Fields(s)
	if 0 == len(fields) {
		return 0, ErrInvalidKey
	}
	n, err := strconv.ParseInt(fields[0], 10, 64)
	if nil != err {
		return 0, ErrInvalidKey
	}
	return n, nil
}

// insert every non-blank line, validate is applied before insertion
func load[K any](r io.Reader, m *metadata, tree *avl.Tree[K, string], validate func(string) error) (*loadResult, error) {

	result := &loadResult{}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := scanner.Text()
		if "" == strings.TrimSpace(line) {
			continue
		}

		if err := validate(line); nil != err {
			if m.verbose {
				fmt.Fprintf(m.e, "line: %d  invalid: %q\n", lineNumber, line)
			}
			result.Invalid += 1
			continue
		}

		err := tree.Insert(line)
		switch {
		case nil == err:
		case fault.IsErrExists(err):
			if m.verbose {
				fmt.Fprintf(m.e, "line: %d  duplicate: %q\n", lineNumber, line)
			}
			result.Duplicates += 1
		default:
			return nil, err
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	result.Items = tree.Count()
	result.Height = tree.Height()
	result.HeightBound = heightBound(result.Items)
	result.Balanced = nil == tree.Check() && float64(result.Height) <= result.HeightBound

	return result, nil
}
