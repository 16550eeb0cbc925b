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

// Buy - purchase a listed critter at or above its asking price
//
// the full bid moves from buyer to seller; the payment keeps the
// buyer alive, i.e. it may not drain the free balance to zero
func Buy(buyer account.Account, identifier critterrecord.Identifier, bid critterrecord.Amount) error {
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

	seller := record.Owner
	if seller == buyer {
		trx.Abort()
		return fault.BuyerIsCritterOwner
	}
	if nil == record.Price {
		trx.Abort()
		return fault.CritterNotForSale
	}
	if bid < *record.Price {
		trx.Abort()
		return fault.BidPriceTooLow
	}
	if escrow.FreeBalance(trx, buyer) < bid {
		trx.Abort()
		return fault.NotEnoughBalance
	}
	if ownership.IsFull(trx, buyer) {
		trx.Abort()
		return fault.CritterCountOverflow
	}

	err = escrow.Transfer(trx, buyer, seller, bid, true)
	if nil != err {
		trx.Abort()
		return err
	}

	err = transferOwnership(trx, record, seller, buyer, identifier)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("bought: %s  buyer: %s  seller: %s  price: %d", identifier, buyer, seller, bid)
	publish(BoughtEvent{
		Buyer:      buyer,
		Seller:     seller,
		Identifier: identifier,
		Price:      bid,
	})
	return nil
}
