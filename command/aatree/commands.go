// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/aatree/fault"
	"github.com/bitmark-inc/aatree/item"
	"github.com/bitmark-inc/aatree/store"
)

// setup command handler
//
// commands that do not need the configuration file, the logger or the
// database; returns false if the command must be processed later
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "insert", "i", "search", "s", "print", "p", "check", "c", "random", "r":
		return false

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %q\n", command)
		}
		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [command|help] arguments...\n", program)

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version sting\n\n")

		fmt.Fprintf(w, "  insert KEY=VALUE...        (i)      - add or overwrite entries in the database\n")
		fmt.Fprintf(w, "                                        then check the tree\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  search KEY...              (s)      - display the value for each key\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  print                      (p)      - draw the tree with values and levels\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  check                      (c)      - verify order, levels and count\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  random [T [C [R]]]         (r)      - build T trees of C random integer keys\n")
		fmt.Fprintf(w, "                                        in [0, R) and check each one\n")
		fmt.Fprintf(w, "\n")
		return true
	}
}

// commands that work on the loaded store
func processCommand(w io.Writer, log *logger.L, s *store.Store, db *leveldb.DB, arguments []string, verbose bool) error {

	if 0 == len(arguments) {
		return fault.ErrMissingCommand
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "insert", "i":
		if 0 == len(arguments) {
			return fault.ErrInvalidArgument
		}
		for _, a := range arguments {
			kv := strings.SplitN(a, "=", 2)
			if 2 != len(kv) {
				return fault.ErrInvalidKeyValuePair
			}
			key, err := item.Parse(s.Kind(), kv[0])
			if nil != err {
				return err
			}
			previous, replaced := s.Insert(key, kv[1])
			if replaced {
				fmt.Fprintf(w, "%s: replaced: %s\n", kv[0], previous)
			} else {
				fmt.Fprintf(w, "%s: inserted\n", kv[0])
			}
		}
		if verbose {
			s.Print(w, true)
		}
		if err := s.Check(); nil != err {
			return err
		}
		n, err := s.Save(db)
		if nil != err {
			return err
		}
		log.Infof("insert: saved: %d entries", n)

	case "search", "s":
		if 0 == len(arguments) {
			return fault.ErrInvalidArgument
		}
		missing := 0
		for _, a := range arguments {
			key, err := item.Parse(s.Kind(), a)
			if nil != err {
				return err
			}
			value, found := s.Search(key)
			if !found {
				fmt.Fprintf(w, "%s: not found\n", a)
				missing += 1
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", a, value)
		}
		if missing > 0 {
			return fault.ErrKeyNotFound
		}

	case "print", "p":
		height := s.Print(w, verbose)
		fmt.Fprintf(w, "count: %d  height: %d\n", s.Count(), height)

	case "check", "c":
		if err := s.Check(); nil != err {
			return err
		}
		fmt.Fprintf(w, "ok: %d entries  height: %d\n", s.Count(), s.Height())

	default:
		return fault.ErrNoSuchCommand
	}

	return nil
}
