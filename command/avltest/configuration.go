// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultKeyMode       = keyModeString
	defaultMaximumNodes  = 0 // unlimited
	defaultPrompt        = "> "

	defaultLogDirectory = "log"
	defaultLogFile      = "avltest.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyMode       string               `gluamapper:"key_mode" json:"key_mode"`
	MaximumNodes  int                  `gluamapper:"maximum_nodes" json:"maximum_nodes"`
	Prompt        string               `gluamapper:"prompt" json:"prompt"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults with the current directory as
// the data directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		KeyMode:       defaultKeyMode,
		MaximumNodes:  defaultMaximumNodes,
		Prompt:        defaultPrompt,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels),
		},
	}

	// absolute path to the main directory
	dataDirectory := ""
	if "" == configurationFileName {
		d, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = d
	} else {
		f, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ = filepath.Split(f)

		if err := configuration.ParseConfigurationFile(f, options); err != nil {
			return nil, err
		}
	}

	options.KeyMode = strings.ToLower(options.KeyMode)
	switch options.KeyMode {
	case keyModeString, keyModeInteger:
	default:
		return nil, fmt.Errorf("key mode: %q  error: %w", options.KeyMode, fault.ErrInvalidKeyMode)
	}

	if options.MaximumNodes < 0 {
		return nil, ErrInvalidMaximumNodes
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q  error: %w", options.DataDirectory, ErrInvalidDataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q  error: %w", options.DataDirectory, ErrNotADirectory)
	}

	// log file must be a simple file name, it is placed in the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("file: %q  error: %w", options.Logging.File, ErrNotPlainName)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
