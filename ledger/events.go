// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/messagebus"
)

// messagebus origin of all ledger events
const eventOrigin = "ledger"

// CreatedEvent - a critter was minted or bred
type CreatedEvent struct {
	Owner      account.Account
	Identifier critterrecord.Identifier
	Deposit    critterrecord.Amount
}

// PriceSetEvent - an owner changed the sale price
//
// a nil price delists the critter
type PriceSetEvent struct {
	Owner      account.Account
	Identifier critterrecord.Identifier
	Price      *critterrecord.Amount
}

// TransferredEvent - ownership moved without payment
type TransferredEvent struct {
	From       account.Account
	To         account.Account
	Identifier critterrecord.Identifier
}

// BoughtEvent - ownership moved against payment
type BoughtEvent struct {
	Buyer      account.Account
	Seller     account.Account
	Identifier critterrecord.Identifier
	Price      critterrecord.Amount
}

// announce an event after the commit of its operation
func publish(item interface{}) {
	messagebus.Send(eventOrigin, item)
}
