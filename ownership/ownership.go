// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage"
)

const uint64ByteSize = 8

// key of the list entry at one position
func listKey(owner account.Account, position uint64) []byte {
	positionBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(positionBytes, position)
	return append(owner.Bytes(), positionBytes...)
}

// key of the position record for one identifier
func indexKey(owner account.Account, identifier critterrecord.Identifier) []byte {
	return append(owner.Bytes(), identifier.Bytes()...)
}

// CountOf - current length of an owner's list
func CountOf(trx storage.Transaction, owner account.Account) uint64 {
	n, _ := trx.GetN(globalData.poolCount, owner.Bytes())
	return n
}

// IsFull - check the owner's list is at capacity
func IsFull(trx storage.Transaction, owner account.Account) bool {
	return CountOf(trx, owner) >= globalData.maxOwned
}

// Append - add an identifier to the end of the owner's list
//
// fails when the account already holds the configured maximum
func Append(trx storage.Transaction, owner account.Account, identifier critterrecord.Identifier) error {

	n := CountOf(trx, owner)
	if n >= globalData.maxOwned {
		return fault.ExceedMaxCritterOwned
	}

	positionBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(positionBytes, n)

	trx.Put(globalData.poolList, listKey(owner, n), identifier.Bytes())
	trx.Put(globalData.poolIndex, indexKey(owner, identifier), positionBytes)
	trx.PutN(globalData.poolCount, owner.Bytes(), n+1)

	return nil
}

// Remove - swap-remove an identifier from the owner's list
//
// O(1): the last element moves into the removed slot, so order is not
// preserved; absence of the identifier on a path where the critter
// record names this owner signals a corrupted index
func Remove(trx storage.Transaction, owner account.Account, identifier critterrecord.Identifier) error {

	dKey := indexKey(owner, identifier)
	positionBytes := trx.Get(globalData.poolIndex, dKey)
	if nil == positionBytes {
		return fault.CritterNotFound
	}
	if uint64ByteSize != len(positionBytes) {
		globalData.log.Criticalf("remove: owner: %s  bad position record: %x", owner, positionBytes)
		return fault.CorruptedOwnershipIndex
	}
	position := binary.BigEndian.Uint64(positionBytes)

	n := CountOf(trx, owner)
	if 0 == n || position >= n {
		globalData.log.Criticalf("remove: owner: %s  position: %d  count: %d", owner, position, n)
		return fault.CorruptedOwnershipIndex
	}
	last := n - 1

	if position != last {
		// relocate the final element into the vacated slot
		lastIdentifierBytes := trx.Get(globalData.poolList, listKey(owner, last))
		if nil == lastIdentifierBytes {
			globalData.log.Criticalf("remove: owner: %s  missing list entry: %d", owner, last)
			return fault.CorruptedOwnershipIndex
		}

		lastIdentifier := critterrecord.Identifier{}
		err := critterrecord.IdentifierFromBytes(&lastIdentifier, lastIdentifierBytes)
		if nil != err {
			globalData.log.Criticalf("remove: owner: %s  bad list entry: %x", owner, lastIdentifierBytes)
			return fault.CorruptedOwnershipIndex
		}

		trx.Put(globalData.poolList, listKey(owner, position), lastIdentifierBytes)
		trx.Put(globalData.poolIndex, indexKey(owner, lastIdentifier), positionBytes)
	}

	trx.Delete(globalData.poolList, listKey(owner, last))
	trx.Delete(globalData.poolIndex, dKey)
	trx.PutN(globalData.poolCount, owner.Bytes(), last)

	return nil
}
