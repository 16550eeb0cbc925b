// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/ownership"
)

// Critter - fetch one committed record
//
// reads the database directly so staged writes of an in-flight
// operation are never observed
func Critter(identifier critterrecord.Identifier) (*critterrecord.Record, error) {
	packed := globalData.poolCritters.GetDirect(identifier.Bytes())
	if nil == packed {
		return nil, fault.CritterNotFound
	}
	return critterrecord.Packed(packed).Unpack()
}

// IsOwner - check the committed owner of a record
//
// an absent identifier is an error, not a negative answer, so callers
// can tell a phantom critter from somebody else's
func IsOwner(acct account.Account, identifier critterrecord.Identifier) (bool, error) {
	record, err := Critter(identifier)
	if nil != err {
		return false, err
	}
	return record.Owner == acct, nil
}

// OwnedBy - page through an account's critters in insertion order
func OwnedBy(owner account.Account, start uint64, count int) ([]ownership.Record, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	return ownership.ListOwnedBy(owner, start, count)
}

// MintedCount - total critters ever created
func MintedCount() uint64 {
	return globalData.counter.CurrentDirect()
}
