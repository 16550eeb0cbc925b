// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// committed data must be visible through the pool afterwards
func TestCommitPublishesStagedWrites(t *testing.T) {

	key := []byte("commit-key")
	value := []byte("commit-value")

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")

	trx.Put(Pool.TestData, key, value)

	// not yet published, but visible through the transaction
	assert.Equal(t, value, trx.Get(Pool.TestData, key), "read-your-writes failed")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Equal(t, value, Pool.TestData.Get(key), "committed value not visible")
}

// aborted data must never reach the database
func TestAbortDiscardsStagedWrites(t *testing.T) {

	key := []byte("abort-key")

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")

	trx.Put(Pool.TestData, key, []byte("doomed"))
	trx.Abort()

	assert.Nil(t, Pool.TestData.Get(key), "aborted value reached the database")

	// the transaction must be reusable after abort
	trx, err = NewDBTransaction()
	assert.Nil(t, err, "transaction not reusable after abort")
	trx.Abort()
}

// a staged delete must hide the key from same-transaction reads
func TestDeleteInsideTransaction(t *testing.T) {

	key := []byte("delete-key")

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Put(Pool.TestData, key, []byte("temporary"))
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	trx, err = NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Delete(Pool.TestData, key)

	assert.Nil(t, trx.Get(Pool.TestData, key), "deleted key still readable in transaction")
	assert.False(t, trx.Has(Pool.TestData, key), "deleted key still present in transaction")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")
	assert.Nil(t, Pool.TestData.Get(key), "deleted key survived commit")
}

// GetN decodes a big endian counter and reports absence
func TestGetN(t *testing.T) {

	key := []byte("counter-key")

	n, found := Pool.TestData.GetN(key)
	assert.False(t, found, "missing key reported found")
	assert.Equal(t, uint64(0), n, "missing key returned non zero")

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.PutN(Pool.TestData, key, uint64(0x0123456789abcdef))
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	n, found = Pool.TestData.GetN(key)
	assert.True(t, found, "stored key not found")
	assert.Equal(t, uint64(0x0123456789abcdef), n, "wrong stored value")
}

// direct reads must only ever see committed data
func TestDirectReadSkipsStagedWrites(t *testing.T) {

	key := []byte("direct-key")
	value := []byte("direct-value")
	nKey := []byte("direct-counter")

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Put(Pool.TestData, key, value)
	trx.PutN(Pool.TestData, nKey, uint64(7))

	// cached reads see the staged data, direct reads must not
	assert.Equal(t, value, Pool.TestData.Get(key), "staged value not in cache")
	assert.Nil(t, Pool.TestData.GetDirect(key), "staged value leaked to direct read")

	_, found := Pool.TestData.GetNDirect(nKey)
	assert.False(t, found, "staged counter leaked to direct read")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Equal(t, value, Pool.TestData.GetDirect(key), "committed value not visible directly")
	n, found := Pool.TestData.GetNDirect(nKey)
	assert.True(t, found, "committed counter not found directly")
	assert.Equal(t, uint64(7), n, "wrong committed counter value")
}

// pools with different prefixes must not alias
func TestPoolIsolation(t *testing.T) {

	key := []byte("shared-key")

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Put(Pool.TestData, key, []byte("test-data"))
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Nil(t, Pool.Critters.Get(key), "key leaked between pools")
	assert.False(t, Pool.Balances.Has(key), "key leaked between pools")
}

// cursor walks a key range in order
func TestFetchCursor(t *testing.T) {

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Put(Pool.TestData, []byte("walk-1"), []byte{0x01})
	trx.Put(Pool.TestData, []byte("walk-2"), []byte{0x02})
	trx.Put(Pool.TestData, []byte("walk-3"), []byte{0x03})
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	cursor := Pool.TestData.NewFetchCursor().Seek([]byte("walk-"))
	elements, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 2, len(elements), "wrong element count")
	assert.Equal(t, []byte("walk-1"), elements[0].Key, "wrong first key")
	assert.Equal(t, []byte{0x01}, elements[0].Value, "wrong first value")

	// cursor advances past fetched keys
	elements, err = cursor.Fetch(2)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 1, len(elements), "wrong element count on second fetch")
	assert.Equal(t, []byte("walk-3"), elements[0].Key, "wrong key on second fetch")
}
