// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - the total of critters ever minted
//
// the counter only ever increases; critters are never destroyed, only
// re-owned, so the value equals the number of records in the critters
// pool and is used solely to refuse minting past the numeric range
package counter

import (
	"math"

	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage"
)

// the single key inside the counter pool
var counterKey = []byte("total")

// Counter - persisted monotonic counter over a storage pool
type Counter struct {
	pool storage.Handle
}

// New - attach a counter to its pool
func New(pool storage.Handle) Counter {
	return Counter{pool: pool}
}

// Current - the number of critters ever minted
func (counter Counter) Current(trx storage.Transaction) uint64 {
	n, _ := trx.GetN(counter.pool, counterKey)
	return n
}

// CurrentDirect - read outside of any transaction
//
// committed value only, staged increments are invisible
func (counter Counter) CurrentDirect() uint64 {
	n, _ := counter.pool.GetNDirect(counterKey)
	return n
}

// Increment - stage the incremented value, checking for overflow
//
// the check happens before any other store mutation of a mint so
// every failure path stays side-effect free
func (counter Counter) Increment(trx storage.Transaction) (uint64, error) {
	n := counter.Current(trx)
	if math.MaxUint64 == n {
		return n, fault.CritterCountOverflow
	}
	n += 1
	trx.PutN(counter.pool, counterKey, n)
	return n, nil
}
