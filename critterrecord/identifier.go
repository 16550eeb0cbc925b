// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package critterrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/critterlab/critterd/fault"
)

// IdentifierLength - number of bytes in a critter identifier
const IdentifierLength = 32

// Identifier - the fixed width content hash identifying one critter
type Identifier [IdentifierLength]byte

// NewIdentifier - hash a packed record to its identifier
func NewIdentifier(packed Packed) Identifier {
	return Identifier(blake2b.Sum256(packed))
}

// IdentifierFromBytes - convert a byte slice to an identifier
func IdentifierFromBytes(identifier *Identifier, buffer []byte) error {
	if IdentifierLength != len(buffer) {
		return fault.InvalidRecordLength
	}
	copy(identifier[:], buffer)
	return nil
}

// Bytes - return the identifier as a byte slice
func (identifier Identifier) Bytes() []byte {
	return identifier[:]
}

// String - hex string for printing
func (identifier Identifier) String() string {
	return hex.EncodeToString(identifier[:])
}

// MarshalText - convert an identifier to hex text
func (identifier Identifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(IdentifierLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, identifier[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to an identifier
func (identifier *Identifier) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	return IdentifierFromBytes(identifier, buffer[:byteCount])
}
