// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/critterlab/critterd/fault"
	"github.com/critterlab/critterd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockDataAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockDataAccess(ctl)

	trx := newTransaction([]DataAccess{mock})
	return trx, mock, ctl
}

func TestTransactionBegin(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Begin().Return(fault.TransactionInUse).Times(1)

	err := trx.Begin()
	assert.Equal(t, nil, err, "first Begin should not return any error")

	err = trx.Begin()
	assert.Equal(t, fault.TransactionInUse, err, "second Begin should return in-use error")
}

func TestTransactionCommit(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)

	_ = trx.Begin()
	err := trx.Commit()
	assert.Equal(t, nil, err, "Commit should not return any error")
}

func TestTransactionAbort(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	_ = trx.Begin()
	trx.Abort()
}

func TestTransactionInUse(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().InUse().Return(false).Times(1)
	mock.EXPECT().InUse().Return(true).Times(1)

	assert.Equal(t, false, trx.InUse(), "fresh transaction reported in use")
	assert.Equal(t, true, trx.InUse(), "begun transaction reported free")
}

// this is ugly, because it uses unexported methods, so general gomock cannot be used
type testHandleMock struct {
	Handle
	PutCalled    bool
	RemoveCalled bool
}

func (m *testHandleMock) put(key []byte, value []byte) { m.PutCalled = true }
func (m *testHandleMock) remove(key []byte)            { m.RemoveCalled = true }

func TestTransactionPut(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	myMock := &testHandleMock{}

	_ = trx.Begin()
	trx.Put(myMock, []byte{}, []byte{})
	assert.Equal(t, true, myMock.PutCalled, "internal method put is not called")
}

func TestTransactionPutN(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	myMock := &testHandleMock{}

	_ = trx.Begin()
	trx.PutN(myMock, []byte{}, uint64(12345))
	assert.Equal(t, true, myMock.PutCalled, "internal method put is not called")
}

func TestTransactionDelete(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	myMock := &testHandleMock{}

	_ = trx.Begin()
	trx.Delete(myMock, []byte{})
	assert.Equal(t, true, myMock.RemoveCalled, "internal method remove is not called")
}
