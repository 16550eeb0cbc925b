// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage"
)

// SetPrice - put a critter up for sale, or delist it with a nil price
//
// only the current owner may change the price
func SetPrice(owner account.Account, identifier critterrecord.Identifier, price *critterrecord.Amount) error {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	record, err := fetchRecord(trx, identifier)
	if nil != err {
		trx.Abort()
		return err
	}
	if record.Owner != owner {
		trx.Abort()
		return fault.NotCritterOwner
	}

	record.Price = price
	trx.Put(globalData.poolCritters, identifier.Bytes(), record.Pack())

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("price set: %s  owner: %s", identifier, owner)
	publish(PriceSetEvent{
		Owner:      owner,
		Identifier: identifier,
		Price:      price,
	})
	return nil
}
