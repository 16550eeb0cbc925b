// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - staged mutation of the pools
//
// Begin marks the shared batch as in use, Commit publishes every
// staged write atomically, Abort discards them all; reads through the
// transaction observe the staged writes
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
}

type TransactionImpl struct {
	dataAccess []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &TransactionImpl{
		dataAccess: access,
	}
}

func (t *TransactionImpl) Begin() error {
	for _, access := range t.dataAccess {
		err := access.Begin()
		if nil != err {
			return err
		}
	}
	return nil
}

func (t *TransactionImpl) Abort() {
	for _, access := range t.dataAccess {
		access.Abort()
	}
}

func (t *TransactionImpl) Commit() error {
	for _, access := range t.dataAccess {
		err := access.Commit()
		if nil != err {
			return err
		}
	}
	return nil
}

func (t *TransactionImpl) InUse() bool {
	for _, access := range t.dataAccess {
		if access.InUse() {
			return true
		}
	}
	return false
}

func (t *TransactionImpl) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

func (t *TransactionImpl) PutN(h Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	h.put(key, buffer)
}

func (t *TransactionImpl) Delete(h Handle, key []byte) {
	h.remove(key)
}

func (t *TransactionImpl) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionImpl) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *TransactionImpl) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
