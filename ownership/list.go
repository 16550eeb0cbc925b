// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
)

// Record - one position of an owner's list
type Record struct {
	N          uint64                   `json:"n,string"`
	Identifier critterrecord.Identifier `json:"identifier"`
}

// ListOwnedBy - fetch a page of critters for an owner
//
// positions start at the supplied value, at most count entries are
// returned; reads committed state only
func ListOwnedBy(owner account.Account, start uint64, count int) ([]Record, error) {

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	ownerBytes := owner.Bytes()
	prefix := append(ownerBytes, startBytes...)

	cursor := globalData.poolList.NewFetchCursor().Seek(prefix)

	// owner ⧺ position → identifier
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			globalData.log.Criticalf("list: key too short: %x", item.Key)
			break loop
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		record := Record{
			N: binary.BigEndian.Uint64(item.Key[split:]),
		}

		err := critterrecord.IdentifierFromBytes(&record.Identifier, item.Value)
		if nil != err {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}
