// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/blockheader"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/escrow"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/ownership"
	"github.com/critterlab/critterd/storage"
)

// entropy tags for the independent draws of one mint
var (
	tagDNA    = []byte("dna")
	tagGender = []byte("gender")
)

// Mint - create a brand new critter with random genetic code
//
// the reservation fee is moved to the owner's reserved balance and
// held for as long as the critter is owned
func Mint(owner account.Account) (critterrecord.Identifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return critterrecord.Identifier{}, err
	}

	identifier, deposit, err := mint(trx, owner, nil, nil)
	if nil != err {
		trx.Abort()
		return critterrecord.Identifier{}, err
	}

	err = trx.Commit()
	if nil != err {
		return critterrecord.Identifier{}, err
	}

	globalData.log.Infof("minted: %s  owner: %s", identifier, owner)
	publish(CreatedEvent{
		Owner:      owner,
		Identifier: identifier,
		Deposit:    deposit,
	})
	return identifier, nil
}

// create one critter record inside the caller's transaction
//
// nil dna or gender means draw it from the entropy source; all checks
// run before the store is touched beyond staging, so callers abort on
// error and nothing sticks
func mint(trx storage.Transaction, owner account.Account, dna *critterrecord.DNA, gender *critterrecord.Gender) (critterrecord.Identifier, critterrecord.Amount, error) {

	err := escrow.Reserve(trx, owner, globalData.fee)
	if nil != err {
		return critterrecord.Identifier{}, 0, err
	}

	genDNA := critterrecord.DNA{}
	if nil == dna {
		genDNA = critterrecord.DeriveDNA(globalData.entropy.Random(tagDNA), blockheader.Height())
	} else {
		genDNA = *dna
	}

	genGender := critterrecord.Male
	if nil == gender {
		genGender = critterrecord.GenderFromByte(globalData.entropy.Random(tagGender)[0])
	} else {
		genGender = *gender
	}

	record := critterrecord.Record{
		DNA:    genDNA,
		Gender: genGender,
		Price:  nil,
		Owner:  owner,
	}
	packed := record.Pack()
	identifier := critterrecord.NewIdentifier(packed)

	// total count first so an overflowing mint fails before the
	// ownership lists are touched
	_, err = globalData.counter.Increment(trx)
	if nil != err {
		return critterrecord.Identifier{}, 0, err
	}

	err = ownership.Append(trx, owner, identifier)
	if nil != err {
		return critterrecord.Identifier{}, 0, err
	}

	trx.Put(globalData.poolCritters, identifier.Bytes(), packed)

	return identifier, globalData.fee, nil
}

// fetch and unpack one record inside a transaction
func fetchRecord(trx storage.Transaction, identifier critterrecord.Identifier) (*critterrecord.Record, error) {
	packed := trx.Get(globalData.poolCritters, identifier.Bytes())
	if nil == packed {
		return nil, fault.CritterNotFound
	}
	return critterrecord.Packed(packed).Unpack()
}
