// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotFound = NotFoundError("configuration file not found")
	ErrInvalidArgument       = InvalidError("invalid argument")
	ErrInvalidDataDirectory  = InvalidError("invalid data directory")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidKeyValuePair   = InvalidError("invalid key=value pair")
	ErrInvalidLogFileName    = InvalidError("log file must be a plain name")
	ErrInvalidRandomSettings = InvalidError("invalid random trial settings")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingCommand        = InvalidError("missing command")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrNoSuchCommand         = NotFoundError("no such command")
	ErrTreeBalance           = ProcessError("tree levels are not balanced")
	ErrTreeCount             = ProcessError("tree count does not match nodes")
	ErrTreeOrder             = ProcessError("tree keys are out of order")
	ErrValueNotStorable      = InvalidError("value is not a string or byte slice")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
