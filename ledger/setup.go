// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/critterlab/critterd/counter"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/entropy"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage"
)

// Config - operating parameters of the ledger
type Config struct {
	ReservationFee critterrecord.Amount
	Entropy        entropy.Source
}

// globals for this module
type ledgerData struct {
	sync.Mutex // serialises all mutating operations

	log *logger.L

	poolCritters storage.Handle
	counter      counter.Counter

	fee     critterrecord.Amount
	entropy entropy.Source

	// set once during initialise
	initialised bool
}

// global data
var globalData ledgerData

// Initialise - connect the ledger to its pools and parameters
func Initialise(poolCritters, poolCounter storage.Handle, cfg Config) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.poolCritters = poolCritters
	globalData.counter = counter.New(poolCounter)
	globalData.fee = cfg.ReservationFee
	globalData.entropy = cfg.Entropy

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the ledger
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

// ReservationFee - the deposit held for every owned critter
func ReservationFee() critterrecord.Amount {
	return globalData.fee
}
