// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/blockheader"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage"
)

// Breed - create a child critter from two parents of the caller
//
// every byte of the child's code comes bitwise from one parent or the
// other, picked by a fresh random mask; the parents may be the same
// record, which clones it
func Breed(owner account.Account, parent1, parent2 critterrecord.Identifier) (critterrecord.Identifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return critterrecord.Identifier{}, err
	}

	record1, err := fetchRecord(trx, parent1)
	if nil != err {
		trx.Abort()
		return critterrecord.Identifier{}, err
	}
	if record1.Owner != owner {
		trx.Abort()
		return critterrecord.Identifier{}, fault.NotCritterOwner
	}

	record2, err := fetchRecord(trx, parent2)
	if nil != err {
		trx.Abort()
		return critterrecord.Identifier{}, err
	}
	if record2.Owner != owner {
		trx.Abort()
		return critterrecord.Identifier{}, fault.NotCritterOwner
	}

	mask := critterrecord.DeriveDNA(globalData.entropy.Random(tagDNA), blockheader.Height())
	childDNA := critterrecord.MixDNA(mask, record1.DNA, record2.DNA)

	identifier, deposit, err := mint(trx, owner, &childDNA, nil)
	if nil != err {
		trx.Abort()
		return critterrecord.Identifier{}, err
	}

	err = trx.Commit()
	if nil != err {
		return critterrecord.Identifier{}, err
	}

	globalData.log.Infof("bred: %s  owner: %s  parents: %s %s", identifier, owner, parent1, parent2)
	publish(CreatedEvent{
		Owner:      owner,
		Identifier: identifier,
		Deposit:    deposit,
	})
	return identifier, nil
}
