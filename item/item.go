// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - key types for the aatree package
//
// each type also has a byte encoding whose byte order matches the
// Compare order, so keys can be stored in an ordered database
package item

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/bitmark-inc/aatree/aatree"
	"github.com/bitmark-inc/aatree/fault"
)

// Key - an ordered item that can be encoded as bytes
type Key interface {
	aatree.Item
	Bytes() []byte
}

// names of the key kinds for configuration
const (
	KindString  = "string"
	KindInteger = "integer"
	KindBytes   = "bytes"
)

// String - text key in byte-wise order
type String string

// Integer - signed numeric key
type Integer int64

// Bytes - binary key in byte-wise order
type Bytes []byte

// Compare - text comparison
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// Bytes - UTF-8 encoding of the text
func (s String) Bytes() []byte {
	return []byte(s)
}

// Compare - numeric comparison
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// Bytes - big endian with the sign bit flipped so that negative
// numbers sort before positive ones
func (i Integer) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(i)^(1<<63))
	return buffer
}

// String - decimal representation
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Compare - byte-wise comparison
func (b Bytes) Compare(x interface{}) int {
	return bytes.Compare(b, x.(Bytes))
}

// Bytes - the raw data
func (b Bytes) Bytes() []byte {
	return b
}

// String - hex representation
func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// ValidKind - true if kind names a supported key type
func ValidKind(kind string) bool {
	switch kind {
	case KindString, KindInteger, KindBytes:
		return true
	default:
		return false
	}
}

// Parse - convert text to a key of the given kind
// bytes keys are given as hex
func Parse(kind string, text string) (Key, error) {
	switch kind {
	case KindString:
		return String(text), nil
	case KindInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return Integer(n), nil
	case KindBytes:
		b, err := hex.DecodeString(text)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return Bytes(b), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// FromBytes - decode the byte form produced by Bytes()
func FromBytes(kind string, buffer []byte) (Key, error) {
	switch kind {
	case KindString:
		return String(buffer), nil
	case KindInteger:
		if 8 != len(buffer) {
			return nil, fault.ErrInvalidKey
		}
		return Integer(binary.BigEndian.Uint64(buffer) ^ (1 << 63)), nil
	case KindBytes:
		b := make([]byte, len(buffer))
		copy(b, buffer)
		return Bytes(b), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}
