// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - the currency and reservation ledger
//
// every account has a free balance and a reserved balance; minting a
// critter moves the reservation fee from free to reserved, a transfer
// re-attributes that fee to the new owner, buying moves the bid price
// between free balances
//
// all mutations go through the storage transaction of the calling
// operation so they commit or abort together with the rest of its
// effects
package escrow
