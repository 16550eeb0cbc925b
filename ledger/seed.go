// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/critterlab/critterd/escrow"
	"github.com/critterlab/critterd/genesis"
	"github.com/critterlab/critterd/storage"
)

// SeedGenesis - fund the genesis accounts and mint the seed critters
//
// called once, on a freshly created database; fundings commit in one
// transaction, each seed critter in its own so a bad entry spoils
// nothing but itself
func SeedGenesis(chainName string) error {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	for _, funding := range genesis.Fundings(chainName) {
		escrow.SetBalance(trx, funding.Account, funding.Balance)
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	for _, seed := range genesis.Critters(chainName) {
		trx, err := storage.NewDBTransaction()
		if nil != err {
			return err
		}

		dna := seed.DNA
		gender := seed.Gender
		identifier, _, err := mint(trx, seed.Owner, &dna, &gender)
		if nil != err {
			// a bad seed entry is loud but not fatal
			globalData.log.Errorf("genesis seed failed: owner: %s  error: %s", seed.Owner, err)
			trx.Abort()
			continue
		}

		err = trx.Commit()
		if nil != err {
			return err
		}
		globalData.log.Infof("genesis critter: %s  owner: %s", identifier, seed.Owner)
	}

	return nil
}
