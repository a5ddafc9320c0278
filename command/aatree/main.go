// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/aatree/configuration"
	"github.com/bitmark-inc/aatree/store"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		arguments = []string{"help"}
	}

	// commands that need neither configuration nor database
	if processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	var masterConfiguration *configuration.Configuration
	switch len(options["config-file"]) {
	case 0:
		masterConfiguration, err = configuration.GetDefaultConfiguration(".")
	case 1:
		masterConfiguration, err = configuration.GetConfiguration(options["config-file"][0])
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration  error: %s", program, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if "random" == arguments[0] || "r" == arguments[0] {
		err = runRandom(os.Stdout, log, masterConfiguration.Random, arguments[1:], newSeed())
		if nil != err {
			exitwithstatus.Message("%s: random error: %s", program, err)
		}
		return
	}

	s, err := store.New(masterConfiguration.KeyType, logger.New("store"))
	if nil != err {
		exitwithstatus.Message("%s: store setup error: %s", program, err)
	}

	db, err := leveldb.OpenFile(masterConfiguration.Database.Directory, nil)
	if nil != err {
		log.Criticalf("database: %q  open error: %s", masterConfiguration.Database.Directory, err)
		exitwithstatus.Message("%s: database: %q  open error: %s", program, masterConfiguration.Database.Directory, err)
	}
	defer db.Close()

	if _, err := s.Load(db, nil); nil != err {
		exitwithstatus.Message("%s: database: %q  load error: %s", program, masterConfiguration.Database.Directory, err)
	}

	if err := processCommand(os.Stdout, log, s, db, arguments, 0 == len(options["quiet"])); nil != err {
		log.Errorf("command: %q  error: %s", arguments[0], err)
		exitwithstatus.Message("%s: %s error: %s", program, arguments[0], err)
	}
}
