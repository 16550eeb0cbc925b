// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage"
)

// globals for ownership
type ownershipData struct {
	sync.RWMutex

	log *logger.L

	poolCount storage.Handle
	poolList  storage.Handle
	poolIndex storage.Handle

	maxOwned uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData ownershipData

// Initialise - connect the index to its pools
//
// maxOwned is the hard per-account capacity bound
func Initialise(poolCount, poolList, poolIndex storage.Handle, maxOwned uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ownership")
	globalData.log.Info("starting…")

	globalData.poolCount = poolCount
	globalData.poolList = poolList
	globalData.poolIndex = poolIndex
	globalData.maxOwned = maxOwned

	globalData.log.Infof("max owned: %d", maxOwned)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown ownership index
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

// MaxOwned - the configured capacity bound
func MaxOwned() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.maxOwned
}
