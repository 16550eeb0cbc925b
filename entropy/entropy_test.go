// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/critterlab/critterd/blockheader"
	"github.com/critterlab/critterd/entropy"
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

func TestSameSeedSameSequence(t *testing.T) {

	blockheader.Set(7)

	a := entropy.New([]byte("replayable seed"))
	b := entropy.New([]byte("replayable seed"))

	assert.Equal(t, a.Random([]byte("dna")), b.Random([]byte("dna")), "sequences diverged")
	assert.Equal(t, a.Random([]byte("dna")), b.Random([]byte("dna")), "sequences diverged on second draw")
}

func TestDrawsAreDistinct(t *testing.T) {

	blockheader.Set(7)

	g := entropy.New([]byte("some seed"))

	first := g.Random([]byte("dna"))
	second := g.Random([]byte("dna"))
	assert.NotEqual(t, first, second, "repeated draw returned identical material")
}

func TestTagsAreIndependent(t *testing.T) {

	blockheader.Set(7)

	a := entropy.New([]byte("some seed"))
	b := entropy.New([]byte("some seed"))

	assert.NotEqual(t, a.Random([]byte("dna")), b.Random([]byte("gender")), "tags did not separate draws")
}

func TestHeightChangesDraw(t *testing.T) {

	a := entropy.New([]byte("some seed"))
	b := entropy.New([]byte("some seed"))

	blockheader.Set(10)
	low := a.Random([]byte("dna"))

	blockheader.Set(11)
	high := b.Random([]byte("dna"))

	assert.NotEqual(t, low, high, "height not mixed into draw")
}

func TestSystemSource(t *testing.T) {

	g, err := entropy.NewSystem()
	assert.Nil(t, err, "system source failed")
	assert.NotEqual(t, [32]byte{}, g.Random([]byte("dna")), "system source returned zeros")
}
