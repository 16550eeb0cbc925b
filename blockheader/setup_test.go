// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/critterlab/critterd/blockheader"
	"github.com/critterlab/critterd/genesis"
)

const testingDirName = "testing"

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

	if nil != blockheader.Initialise() {
		os.RemoveAll(testingDirName)
		os.Exit(1)
	}

	result := m.Run()

	blockheader.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func TestHeight(t *testing.T) {

	blockheader.Set(genesis.BlockNumber)
	assert.Equal(t, genesis.BlockNumber, blockheader.Height(), "wrong starting height")

	h := blockheader.Increment()
	assert.Equal(t, genesis.BlockNumber+1, h, "wrong incremented height")
	assert.Equal(t, h, blockheader.Height(), "height not stored")

	blockheader.Set(42)
	assert.Equal(t, uint64(42), blockheader.Height(), "set did not take")
}
