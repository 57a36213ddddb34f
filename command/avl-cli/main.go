// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "load and verify AVL trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "load",
			Usage:     "insert each line of a file into a tree",
			ArgsUsage: "FILE\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "integer, i",
					Usage: " key is the leading integer of each line",
				},
			},
			Action: runLoad,
		},
		{
			Name:      "sequence",
			Usage:     "insert an ascending sequence and verify the tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 1000,
					Usage: "*number of items to insert `N`",
				},
				cli.IntFlag{
					Name:  "delete-every, d",
					Value: 0,
					Usage: " delete every K-th item, 0 to keep all `K`",
				},
			},
			Action: runSequence,
		},
		{
			Name:      "version",
			Usage:     "display avl-cli version",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

// maximum height of an AVL tree holding n items
func heightBound(n int) float64 {
	return 1.45 * math.Log2(float64(n+2))
}
