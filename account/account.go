// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/critterlab/critterd/fault"
)

// AccountSize - number of bytes in an account identifier
const AccountSize = 32

// Account - the fixed width account identifier
//
// the ledger only needs a stable identity for each participant, the
// bytes are opaque to all operations
type Account [AccountSize]byte

// AccountFromBytes - convert a byte slice to an account
func AccountFromBytes(account *Account, buffer []byte) error {
	if AccountSize != len(buffer) {
		return fault.CannotDecodeAccount
	}
	copy(account[:], buffer)
	return nil
}

// AccountFromBase58 - convert a base58 encoded string to an account
func AccountFromBase58(s string) (Account, error) {
	account := Account{}
	buffer, err := base58.Decode(s)
	if nil != err {
		return account, fault.CannotDecodeAccount
	}
	err = AccountFromBytes(&account, buffer)
	return account, err
}

// Bytes - return the account as a byte slice
func (account Account) Bytes() []byte {
	return account[:]
}

// String - base58 encoding of the account
func (account Account) String() string {
	return base58.Encode(account[:])
}

// IsZero - check if account is the all zero value
func (account Account) IsZero() bool {
	return bytes.Equal(account[:], make([]byte, AccountSize))
}

// MarshalText - convert an account to base58 text
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}
