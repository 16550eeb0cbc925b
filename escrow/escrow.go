// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage"
)

// ExistentialMinimum - smallest free balance a keep-alive transfer may
// leave behind
const ExistentialMinimum = critterrecord.Amount(1)

// globals for escrow
type escrowData struct {
	sync.RWMutex

	log *logger.L

	poolBalances storage.Handle
	poolReserved storage.Handle

	// set once during initialise
	initialised bool
}

// global data
var globalData escrowData

// Initialise - connect the escrow ledger to its pools
func Initialise(poolBalances, poolReserved storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("escrow")
	globalData.log.Info("starting…")

	globalData.poolBalances = poolBalances
	globalData.poolReserved = poolReserved

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the escrow ledger
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// FreeBalance - spendable funds of an account
func FreeBalance(trx storage.Transaction, acct account.Account) critterrecord.Amount {
	n, _ := trx.GetN(globalData.poolBalances, acct.Bytes())
	return critterrecord.Amount(n)
}

// ReservedBalance - funds held in escrow for an account
func ReservedBalance(trx storage.Transaction, acct account.Account) critterrecord.Amount {
	n, _ := trx.GetN(globalData.poolReserved, acct.Bytes())
	return critterrecord.Amount(n)
}

// SetBalance - overwrite the free balance, genesis funding only
func SetBalance(trx storage.Transaction, acct account.Account, amount critterrecord.Amount) {
	trx.PutN(globalData.poolBalances, acct.Bytes(), uint64(amount))
}

// Transfer - move funds between free balances
//
// keepAlive refuses to drain the payer below the existential minimum
func Transfer(trx storage.Transaction, from, to account.Account, amount critterrecord.Amount, keepAlive bool) error {

	fromBalance := FreeBalance(trx, from)
	if fromBalance < amount {
		return fault.NotEnoughBalance
	}
	remaining := fromBalance - amount
	if keepAlive && remaining < ExistentialMinimum {
		return fault.WouldKillAccount
	}

	toBalance := FreeBalance(trx, to)

	trx.PutN(globalData.poolBalances, from.Bytes(), uint64(remaining))
	trx.PutN(globalData.poolBalances, to.Bytes(), uint64(toBalance+amount))
	return nil
}

// Reserve - move funds from free to reserved
func Reserve(trx storage.Transaction, acct account.Account, amount critterrecord.Amount) error {

	freeBalance := FreeBalance(trx, acct)
	if freeBalance < amount {
		return fault.NotEnoughBalance
	}

	trx.PutN(globalData.poolBalances, acct.Bytes(), uint64(freeBalance-amount))
	trx.PutN(globalData.poolReserved, acct.Bytes(), uint64(ReservedBalance(trx, acct)+amount))
	return nil
}

// Unreserve - release reserved funds back to free
//
// never fails: at most the reserved amount is released
func Unreserve(trx storage.Transaction, acct account.Account, amount critterrecord.Amount) {

	reserved := ReservedBalance(trx, acct)
	if amount > reserved {
		globalData.log.Criticalf("unreserve: account: %s  amount: %d  reserved only: %d", acct, amount, reserved)
		amount = reserved
	}

	trx.PutN(globalData.poolReserved, acct.Bytes(), uint64(reserved-amount))
	trx.PutN(globalData.poolBalances, acct.Bytes(), uint64(FreeBalance(trx, acct)+amount))
	return
}
