// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

type sequenceResult struct {
	Inserted    int     `json:"inserted"`
	Deleted     int     `json:"deleted"`
	Items       int     `json:"items"`
	Height      int     `json:"height"`
	HeightBound float64 `json:"heightBound"`
}

func runSequence(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result, err := sequence(c.Int("count"), c.Int("delete-every"), m)
	if nil != err {
		return err
	}

	return printJson(m.w, result)
}

// insert 1..count ascending then delete every interval-th value
func sequence(count int, interval int, m *metadata) (*sequenceResult, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if interval < 0 {
		return nil, ErrInvalidInterval
	}

	tree := avl.New(func(n int) int { return n }, avl.WithCapacity(count))

	result := &sequenceResult{}
	for i := 1; i <= count; i += 1 {
		if err := tree.Insert(i); nil != err {
			return nil, err
		}
		result.Inserted += 1
	}

	if interval > 0 {
		for i := interval; i <= count; i += interval {
			if err := tree.Delete(i); nil != err {
				return nil, err
			}
			result.Deleted += 1
		}
	}

	if err := tree.Check(); nil != err {
		return nil, err
	}

	result.Items = tree.Count()
	result.Height = tree.Height()
	result.HeightBound = heightBound(result.Items)

	if m.verbose {
		fmt.Fprintf(m.e, "items: %d  height: %d  bound: %.2f\n", result.Items, result.Height, result.HeightBound)
	}

	if float64(result.Height) > result.HeightBound {
		return nil, fmt.Errorf("height: %d  bound: %.2f  error: %w", result.Height, result.HeightBound, ErrHeightExceedsBound)
	}

	return result, nil
}
