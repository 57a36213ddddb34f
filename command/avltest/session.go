// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	deletePrefix = "delete "
)

type session struct {
	store  Store
	prompt string
	w      io.Writer
	log    *logger.L
}

func newSession(store Store, prompt string, w io.Writer, log *logger.L) *session {
	return &session{
		store:  store,
		prompt: prompt,
		w:      w,
		log:    log,
	}
}

// run - read and execute commands until "quit" or end of input
//
// the tree is always freed before returning
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.w, s.prompt)

		if !scanner.Scan() {
			s.quit()
			return scanner.Err()
		}

		if !s.execute(scanner.Text()) {
			return nil
		}
	}
}

// execute one command line, returns false on quit
func (s *session) execute(input string) bool {
	input = strings.TrimSuffix(input, "\r")

	switch {
	case "quit" == input:
		s.quit()
		return false

	case "list" == input:
		s.list(false)

	case "test" == input:
		s.list(true)

	case "count" == input:
		fmt.Fprintf(s.w, "count: %d\n", s.store.Count())

	case "height" == input:
		fmt.Fprintf(s.w, "height: %d\n", s.store.Height())

	case "check" == input:
		if err := s.store.Check(); nil != err {
			s.log.Errorf("check failed: %s", err)
			fmt.Fprintf(s.w, "Check Failed: %s\n", err)
		} else {
			fmt.Fprintf(s.w, "Check Passed\n")
		}

	case "print" == input:
		depth := s.store.Print(s.w)
		s.log.Debugf("printed tree depth: %d", depth)

	case strings.HasPrefix(input, deletePrefix):
		s.delete(strings.TrimPrefix(input, deletePrefix))

	default:
		s.insert(input)
	}
	return true
}

func (s *session) quit() {
	n := s.store.Free()
	s.log.Infof("freed: %d items", n)
}

// iterate over the tree, optionally confirming that each item can
// be found by its key
func (s *session) list(check bool) {
	counter := 1
	for item := range s.store.Items() {
		checkout := ""
		if check {
			if _, err := s.store.Search(item); nil == err {
				checkout = " Found"
			}
		}
		fmt.Fprintf(s.w, "%03d:%s [%s]\n", counter, checkout, item)
		counter += 1
	}
}

func (s *session) insert(item string) {
	err := s.store.Insert(item)
	switch {
	case nil == err:
		fmt.Fprintf(s.w, "Inserted\n")
	case fault.IsErrExists(err):
		fmt.Fprintf(s.w, "Duplicate Not Inserted\n")
	case ErrInvalidKey == err:
		fmt.Fprintf(s.w, "Invalid Key\n")
	default:
		s.log.Errorf("insert: %q  error: %s", item, err)
		fmt.Fprintf(s.w, "Insert Failed\n")
	}
}

// search first so a missing key is reported separately from a
// failed deletion
func (s *session) delete(key string) {
	_, err := s.store.Search(key)
	if ErrInvalidKey == err {
		fmt.Fprintf(s.w, "Invalid Key\n")
		return
	}
	if nil != err {
		fmt.Fprintf(s.w, "Not Found--Not Deleted\n")
		return
	}

	if err := s.store.Delete(key); nil != err {
		s.log.Errorf("delete: %q  error: %s", key, err)
		fmt.Fprintf(s.w, "Delete Failed\n")
		return
	}
	fmt.Fprintf(s.w, "Deleted\n")
}
