// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aatree/fault"
	"github.com/bitmark-inc/aatree/item"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultKeyType = item.KindString

	defaultTrials = 300
	defaultCount  = 20
	defaultRange  = 1000000

	defaultDatabaseDirectory = "aatree.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "aatree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"store":           "info",
		logger.DefaultTag: "critical",
	}
)

// RandomType - settings for the random trial command
type RandomType struct {
	Trials int   `gluamapper:"trials" json:"trials"`
	Count  int   `gluamapper:"count" json:"count"`
	Range  int64 `gluamapper:"range" json:"range"`
}

// DatabaseType - snapshot database location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
}

// Configuration - all settings for the driver program
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Random        RandomType           `gluamapper:"random" json:"random"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the values used before any file is read
func defaults() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		KeyType:       defaultKeyType,
		Random: RandomType{
			Trials: defaultTrials,
			Count:  defaultCount,
			Range:  defaultRange,
		},
		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// GetConfiguration - read, decode and verify the configuration file
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrConfigurationNotFound
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.resolve(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// GetDefaultConfiguration - the defaults relative to a directory, for
// running without a configuration file
func GetDefaultConfiguration(directory string) (*Configuration, error) {
	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		return nil, err
	}
	options := defaults()
	if err := options.resolve(directory); nil != err {
		return nil, err
	}
	return options, nil
}

// verify settings and make all paths absolute
func (options *Configuration) resolve(dataDirectory string) error {

	options.KeyType = strings.ToLower(options.KeyType)
	if !item.ValidKind(options.KeyType) {
		return fault.ErrInvalidKeyType
	}

	if options.Random.Trials <= 0 || options.Random.Count <= 0 || options.Random.Range <= 0 {
		return fault.ErrInvalidRandomSettings
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fault.ErrInvalidDataDirectory
	}

	// log file is a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fault.ErrInvalidLogFileName
	}

	options.Database.Directory = ensureAbsolute(options.DataDirectory, options.Database.Directory)

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
