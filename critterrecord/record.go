// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package critterrecord

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/fault"
)

// DNALength - number of bytes in the genetic code
const DNALength = 16

// DNA - the genetic code of one critter
type DNA [DNALength]byte

// Amount - currency amount used for prices and balances
type Amount uint64

// Record - one critter
//
// DNA and Gender are immutable after mint, Owner changes only through
// a transfer, Price is nil while the critter is not for sale
type Record struct {
	DNA    DNA             `json:"dna"`
	Gender Gender          `json:"gender"`
	Price  *Amount         `json:"price,omitempty"`
	Owner  account.Account `json:"owner"`
}

// Packed - byte encoded record, the form stored in the critters pool
type Packed []byte

// structure of the packed record
const (
	oneByteSize    = 1
	uint64ByteSize = 8

	genderStart  = 0
	genderFinish = genderStart + oneByteSize

	priceFlagStart  = genderFinish
	priceFlagFinish = priceFlagStart + oneByteSize

	priceStart  = priceFlagFinish
	priceFinish = priceStart + uint64ByteSize

	dnaStart  = priceFinish
	dnaFinish = dnaStart + DNALength

	ownerStart  = dnaFinish
	ownerFinish = ownerStart + account.AccountSize

	// length of the packed record
	packLength = ownerFinish
)

// price flag values
const (
	priceAbsent  = 0x00
	pricePresent = 0x01
)

// Pack - encode a record to its stored form
func (record *Record) Pack() Packed {

	packed := make(Packed, 0, packLength)

	packed = append(packed, byte(record.Gender))

	priceValue := make([]byte, uint64ByteSize)
	if nil == record.Price {
		packed = append(packed, priceAbsent)
	} else {
		packed = append(packed, pricePresent)
		binary.BigEndian.PutUint64(priceValue, uint64(*record.Price))
	}
	packed = append(packed, priceValue...)

	packed = append(packed, record.DNA[:]...)
	packed = append(packed, record.Owner.Bytes()...)

	return packed
}

// Unpack - decode a stored record
func (packed Packed) Unpack() (*Record, error) {
	if packLength != len(packed) {
		return nil, fault.InvalidRecordLength
	}

	record := &Record{
		Gender: Gender(packed[genderStart]),
	}
	if !record.Gender.Valid() {
		return nil, fault.InvalidGender
	}

	switch packed[priceFlagStart] {
	case priceAbsent:
		// price stays nil
	case pricePresent:
		price := Amount(binary.BigEndian.Uint64(packed[priceStart:priceFinish]))
		record.Price = &price
	default:
		return nil, fault.InvalidRecordLength
	}

	copy(record.DNA[:], packed[dnaStart:dnaFinish])

	err := account.AccountFromBytes(&record.Owner, packed[ownerStart:ownerFinish])
	if nil != err {
		return nil, err
	}

	return record, nil
}

// MakeIdentifier - content hash of the record
//
// only ever called once per critter, from mint; the identifier is
// stored as the record key and never derived again
func (record *Record) MakeIdentifier() Identifier {
	return NewIdentifier(record.Pack())
}

// DeriveDNA - hash entropy and the current height down to a genetic code
//
// payload is 32 bytes of fresh randomness followed by the big endian
// height, digested to the 16 byte DNA width
func DeriveDNA(random [32]byte, height uint64) DNA {

	payload := make([]byte, 0, len(random)+uint64ByteSize)
	payload = append(payload, random[:]...)

	heightBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(heightBytes, height)
	payload = append(payload, heightBytes...)

	dna := DNA{}
	digest := blake2bSum128(payload)
	copy(dna[:], digest)
	return dna
}

// 16 byte BLAKE2b digest
func blake2bSum128(data []byte) []byte {
	h, err := blake2b.New(DNALength, nil)
	if nil != err {
		panic("blake2b initialisation failed")
	}
	h.Write(data)
	return h.Sum(nil)
}

// MixDNA - combine two parent codes under a random mask
//
// each bit of the child comes from parent one where the mask bit is
// set and from parent two otherwise
func MixDNA(mask DNA, dna1 DNA, dna2 DNA) DNA {
	child := DNA{}
	for i := 0; i < DNALength; i += 1 {
		child[i] = (mask[i] & dna1[i]) | (^mask[i] & dna2[i])
	}
	return child
}
