// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the per-account index of owned critters
//
// each account has a bounded list of critter identifiers:
//
//   N ⧺ owner              - current length of the list
//   L ⧺ owner ⧺ position   - identifier held at that position
//   D ⧺ owner ⧺ identifier - position, for O(1) removal
//
// appends keep insertion order; removal moves the last element into
// the removed slot (swap-remove) so order is not preserved across
// removals
package ownership
