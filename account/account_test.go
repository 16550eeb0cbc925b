// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critterlab/critterd/account"
	"github.com/critterlab/critterd/fault"
)

// test round trip through the text representation
func TestBase58RoundTrip(t *testing.T) {

	var acc account.Account
	for i := 0; i < account.AccountSize; i += 1 {
		acc[i] = byte(i + 1)
	}

	text, err := acc.MarshalText()
	assert.Nil(t, err, "marshal failed")

	var decoded account.Account
	err = decoded.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal failed")
	assert.Equal(t, acc, decoded, "account changed in round trip")
}

// short or corrupted input must be rejected
func TestDecodeErrors(t *testing.T) {

	_, err := account.AccountFromBase58("3MvykBZzN")
	assert.Equal(t, fault.CannotDecodeAccount, err, "wrong error for short input")

	_, err = account.AccountFromBase58("not-base-58-0OIl")
	assert.Equal(t, fault.CannotDecodeAccount, err, "wrong error for invalid input")
}

func TestIsZero(t *testing.T) {

	var acc account.Account
	assert.True(t, acc.IsZero(), "fresh account is not zero")

	acc[account.AccountSize-1] = 0x01
	assert.False(t, acc.IsZero(), "non-empty account reported zero")
}
