// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - the initial state of each chain
//
// fundings credit the starting free balances, critters are the seed
// records fed through the normal mint path at first start
package genesis

import (
	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/chain"
	"github.com/critterlab/critterd/critterrecord"
)

// BlockNumber - height of the genesis block
const BlockNumber = uint64(1)

// Funding - starting free balance of one account
type Funding struct {
	Account account.Account
	Balance critterrecord.Amount
}

// Critter - one seed record: owner, genetic code and gender
type Critter struct {
	Owner  account.Account
	DNA    critterrecord.DNA
	Gender critterrecord.Gender
}

// the accounts seeded on the test chains
var (
	testAlice = account.Account{
		0xa1, 0x1c, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
	}
	testBob = account.Account{
		0xb0, 0xb0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
	}
)

// starting balances for the test chains
var testFundings = []Funding{
	{Account: testAlice, Balance: 100},
	{Account: testBob, Balance: 100},
}

// seed critters for the test chains
var testCritters = []Critter{
	{
		Owner: testAlice,
		DNA: critterrecord.DNA{
			0x3c, 0x8f, 0x21, 0xd0, 0x5a, 0x17, 0xee, 0x42,
			0x9b, 0x64, 0x0d, 0xf3, 0x70, 0xc5, 0x88, 0x1e,
		},
		Gender: critterrecord.Female,
	},
	{
		Owner: testBob,
		DNA: critterrecord.DNA{
			0xe7, 0x02, 0xb4, 0x69, 0xcd, 0x50, 0x1a, 0xf8,
			0x26, 0xd3, 0x9e, 0x45, 0xb1, 0x0c, 0x77, 0xaa,
		},
		Gender: critterrecord.Male,
	},
}

// Fundings - the starting balances for a chain
//
// the live chain starts empty; balances arrive through the host's
// currency genesis, not ours
func Fundings(chainName string) []Funding {
	switch chainName {
	case chain.Testing, chain.Local:
		return testFundings
	default:
		return nil
	}
}

// Critters - the seed records for a chain
func Critters(chainName string) []Critter {
	switch chainName {
	case chain.Testing, chain.Local:
		return testCritters
	default:
		return nil
	}
}
