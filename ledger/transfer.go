// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/escrow"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/ownership"
	"github.com/critterlab/critterd/storage"
)

// Transfer - move a critter to another account without payment
//
// the reservation fee follows the critter: it is reserved against the
// new owner before being released from the old one, so the deposit is
// never momentarily unbacked
func Transfer(from, to account.Account, identifier critterrecord.Identifier) error {
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
	if record.Owner != from {
		trx.Abort()
		return fault.NotCritterOwner
	}
	if from == to {
		trx.Abort()
		return fault.TransferToSelf
	}
	if ownership.IsFull(trx, to) {
		trx.Abort()
		return fault.ExceedMaxCritterOwned
	}

	err = transferOwnership(trx, record, from, to, identifier)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("transferred: %s  from: %s  to: %s", identifier, from, to)
	publish(TransferredEvent{
		From:       from,
		To:         to,
		Identifier: identifier,
	})
	return nil
}

// re-home one record: re-reserve the fee, move the ownership entries
// and clear any sale price
//
// callers have already verified the current owner and the capacity of
// the new one
func transferOwnership(trx storage.Transaction, record *critterrecord.Record, from, to account.Account, identifier critterrecord.Identifier) error {

	err := escrow.Reserve(trx, to, globalData.fee)
	if nil != err {
		return err
	}
	escrow.Unreserve(trx, from, globalData.fee)

	err = ownership.Remove(trx, from, identifier)
	if nil != err {
		return err
	}

	record.Owner = to
	record.Price = nil

	err = ownership.Append(trx, to, identifier)
	if nil != err {
		return err
	}

	trx.Put(globalData.poolCritters, identifier.Bytes(), record.Pack())
	return nil
}
