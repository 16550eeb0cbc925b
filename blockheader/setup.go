// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - the current chain height
//
// a single number shared by all operations; mint folds it into DNA
// derivation so two mints at different heights diverge even from the
// same random material
package blockheader

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/genesis"
)

// globals for this module
type blockData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	height uint64 // this is the current block Height

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - setup the current block data
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("blockheader")
	globalData.log.Info("starting…")

	globalData.height = genesis.BlockNumber

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the block header system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	return nil
}

// Set - set the current height
func Set(height uint64) {
	globalData.Lock()
	globalData.height = height
	globalData.Unlock()
}

// Increment - advance to the next block
func Increment() uint64 {
	globalData.Lock()
	globalData.height += 1
	height := globalData.height
	globalData.Unlock()
	return height
}

// Height - return the current height
func Height() uint64 {
	globalData.RLock()
	height := globalData.height
	globalData.RUnlock()
	return height
}
