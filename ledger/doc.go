// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the critter operations
//
// mint, breed, set price, transfer and buy; each operation stages all
// of its effects in one storage transaction and commits only after
// every check has passed, so a failed operation leaves no trace
//
// operations are serialised by a single lock; reads of committed
// state (queries) bypass the lock
package ledger
