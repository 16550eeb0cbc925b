// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package critterrecord - the critter asset record
//
// a critter is a uniquely identified collectible creature; the record
// holds its genetic code, gender, optional sale price and current
// owner
//
// the identifier is the BLAKE2b-256 digest of the packed record as it
// was at mint time; it is computed exactly once and never recomputed
// even though owner and price mutate later
package critterrecord
