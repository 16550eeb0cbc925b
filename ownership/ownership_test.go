// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/critterrecord"
	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/ownership"
	"github.com/critterlab/critterd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
	testMaxOwned     = 3
)

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		os.RemoveAll(testingDirName)
		os.Exit(1)
	}

	err = ownership.Initialise(
		storage.Pool.OwnerCount,
		storage.Pool.OwnerList,
		storage.Pool.OwnerIndex,
		testMaxOwned,
	)
	if nil != err {
		storage.Finalise()
		os.RemoveAll(testingDirName)
		os.Exit(1)
	}

	result := m.Run()

	ownership.Finalise()
	storage.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func makeAccount(fill byte) account.Account {
	acc := account.Account{}
	for i := 0; i < account.AccountSize; i += 1 {
		acc[i] = fill
	}
	return acc
}

func makeIdentifier(fill byte) critterrecord.Identifier {
	id := critterrecord.Identifier{}
	for i := 0; i < critterrecord.IdentifierLength; i += 1 {
		id[i] = fill
	}
	return id
}

func begin(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	return trx
}

func TestAppendKeepsInsertionOrder(t *testing.T) {

	owner := makeAccount(0x01)

	trx := begin(t)
	assert.Nil(t, ownership.Append(trx, owner, makeIdentifier(0x0a)), "append failed")
	assert.Nil(t, ownership.Append(trx, owner, makeIdentifier(0x0b)), "append failed")
	assert.Equal(t, uint64(2), ownership.CountOf(trx, owner), "wrong count")
	assert.Nil(t, trx.Commit(), "commit failed")

	records, err := ownership.ListOwnedBy(owner, 0, 10)
	assert.Nil(t, err, "list failed")
	assert.Equal(t, 2, len(records), "wrong record count")
	assert.Equal(t, makeIdentifier(0x0a), records[0].Identifier, "wrong first identifier")
	assert.Equal(t, makeIdentifier(0x0b), records[1].Identifier, "wrong second identifier")
	assert.Equal(t, uint64(0), records[0].N, "wrong first position")
}

func TestAppendCapacityBound(t *testing.T) {

	owner := makeAccount(0x02)

	trx := begin(t)
	for i := 0; i < testMaxOwned; i += 1 {
		assert.Nil(t, ownership.Append(trx, owner, makeIdentifier(byte(0x10+i))), "append failed")
	}

	err := ownership.Append(trx, owner, makeIdentifier(0x1f))
	assert.Equal(t, fault.ExceedMaxCritterOwned, err, "capacity bound not enforced")
	assert.Equal(t, uint64(testMaxOwned), ownership.CountOf(trx, owner), "count changed by failed append")
	trx.Abort()
}

func TestSwapRemove(t *testing.T) {

	owner := makeAccount(0x03)

	trx := begin(t)
	assert.Nil(t, ownership.Append(trx, owner, makeIdentifier(0x21)), "append failed")
	assert.Nil(t, ownership.Append(trx, owner, makeIdentifier(0x22)), "append failed")
	assert.Nil(t, ownership.Append(trx, owner, makeIdentifier(0x23)), "append failed")

	// remove the first element: the last must move into its slot
	assert.Nil(t, ownership.Remove(trx, owner, makeIdentifier(0x21)), "remove failed")
	assert.Equal(t, uint64(2), ownership.CountOf(trx, owner), "wrong count after remove")
	assert.Nil(t, trx.Commit(), "commit failed")

	records, err := ownership.ListOwnedBy(owner, 0, 10)
	assert.Nil(t, err, "list failed")
	assert.Equal(t, 2, len(records), "wrong record count")
	assert.Equal(t, makeIdentifier(0x23), records[0].Identifier, "swap-remove did not relocate last element")
	assert.Equal(t, makeIdentifier(0x22), records[1].Identifier, "untouched element moved")

	// removed identifier can be removed no more
	trx = begin(t)
	err = ownership.Remove(trx, owner, makeIdentifier(0x21))
	assert.Equal(t, fault.CritterNotFound, err, "wrong error for absent identifier")
	trx.Abort()
}

func TestRemoveLastElement(t *testing.T) {

	owner := makeAccount(0x04)

	trx := begin(t)
	assert.Nil(t, ownership.Append(trx, owner, makeIdentifier(0x31)), "append failed")
	assert.Nil(t, ownership.Remove(trx, owner, makeIdentifier(0x31)), "remove failed")
	assert.Equal(t, uint64(0), ownership.CountOf(trx, owner), "count not zero")
	assert.Nil(t, trx.Commit(), "commit failed")

	records, err := ownership.ListOwnedBy(owner, 0, 10)
	assert.Nil(t, err, "list failed")
	assert.Equal(t, 0, len(records), "list not empty")
}

func TestListDoesNotCrossOwners(t *testing.T) {

	ownerA := makeAccount(0x05)
	ownerB := makeAccount(0x06)

	trx := begin(t)
	assert.Nil(t, ownership.Append(trx, ownerA, makeIdentifier(0x41)), "append failed")
	assert.Nil(t, ownership.Append(trx, ownerB, makeIdentifier(0x42)), "append failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	records, err := ownership.ListOwnedBy(ownerA, 0, 10)
	assert.Nil(t, err, "list failed")
	assert.Equal(t, 1, len(records), "picked up another owner's entries")
	assert.Equal(t, makeIdentifier(0x41), records[0].Identifier, "wrong identifier")
}
