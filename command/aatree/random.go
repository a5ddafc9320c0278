// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aatree/aatree"
	"github.com/bitmark-inc/aatree/configuration"
	"github.com/bitmark-inc/aatree/fault"
	"github.com/bitmark-inc/aatree/item"
)

func newSeed() int64 {
	return time.Now().UnixNano()
}

// build many small trees from random integer keys and check each
//
// optional arguments override the configured trials, count and range
func runRandom(w io.Writer, log *logger.L, settings configuration.RandomType, arguments []string, seed int64) error {

	values := []*int64{}
	trials := int64(settings.Trials)
	count := int64(settings.Count)
	keyRange := settings.Range
	values = append(values, &trials, &count, &keyRange)

	if len(arguments) > len(values) {
		return fault.ErrInvalidArgument
	}
	for i, a := range arguments {
		n, err := strconv.ParseInt(a, 10, 64)
		if nil != err || n <= 0 {
			return fault.ErrInvalidRandomSettings
		}
		*values[i] = n
	}

	log.Infof("random: trials: %d  count: %d  range: %d  seed: %d", trials, count, keyRange, seed)

	r := rand.New(rand.NewSource(seed))
	failures := 0
	maximumHeight := 0
	for trial := int64(0); trial < trials; trial += 1 {
		tree := aatree.New()
		for i := int64(0); i < count; i += 1 {
			tree.Insert(item.Integer(r.Int63n(keyRange)), i)
		}
		if h := tree.Height(); h > maximumHeight {
			maximumHeight = h
		}
		if err := tree.Check(); nil != err {
			failures += 1
			buffer := &bytes.Buffer{}
			tree.Print(buffer, false)
			log.Errorf("random: trial: %d  error: %s\n%s", trial, err, buffer.String())
		}
	}

	fmt.Fprintf(w, "trials: %d  failures: %d  maximum height: %d\n", trials, failures, maximumHeight)
	if failures > 0 {
		return fault.ErrTreeBalance
	}
	return nil
}
