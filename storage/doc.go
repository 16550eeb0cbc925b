// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the critter ledger data in a LevelDB database
//
// all records are keyed with a single byte prefix so that several
// logical pools share one database:
//
//   C ⧺ identifier         - packed critter record
//   N ⧺ owner              - count of critters in the owner's list
//   L ⧺ owner ⧺ position   - identifier at a position of the owner's list
//   D ⧺ owner ⧺ identifier - position of an identifier in the owner's list
//   K ⧺ "total"            - count of critters ever minted
//   B ⧺ account            - free balance
//   R ⧺ account            - reserved balance
//   Z ⧺ anything           - reserved for testing
//
// mutations are staged in a batch with a read-your-writes cache and
// only reach the database on commit; abort discards the whole batch,
// giving every ledger operation all-or-nothing behaviour
package storage
