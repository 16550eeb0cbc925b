// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for ledger events
//
// operations announce what they did (minted, priced, transferred,
// bought) and any interested consumer drains the channel
package messagebus
