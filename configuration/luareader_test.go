// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critterlab/critterd/configuration"
	"github.com/critterlab/critterd/fault"
)

type testDatabase struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfig struct {
	Chain          string       `gluamapper:"chain"`
	ReservationFee uint64       `gluamapper:"reservation_fee"`
	Database       testDatabase `gluamapper:"database"`
}

const sampleConfiguration = `
local M = {}

M.chain = "local"
M.reservation_fee = 5

M.database = {
    directory = "data",
    name = "critter.leveldb",
}

return M
`

func TestParseConfigurationFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "cannot create directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "critterd.conf")
	err = ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600)
	assert.Nil(t, err, "cannot write sample")

	config := testConfig{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse failed")

	assert.Equal(t, "local", config.Chain, "wrong chain")
	assert.Equal(t, uint64(5), config.ReservationFee, "wrong fee")
	assert.Equal(t, "data", config.Database.Directory, "wrong database directory")
	assert.Equal(t, "critter.leveldb", config.Database.Name, "wrong database name")
}

func TestParseRejectsNonPointer(t *testing.T) {

	err := configuration.ParseConfigurationFile("no-such-file", testConfig{})
	assert.Equal(t, fault.InvalidStructPointer, err, "non-pointer accepted")

	n := 0
	err = configuration.ParseConfigurationFile("no-such-file", &n)
	assert.Equal(t, fault.InvalidStructPointer, err, "non-struct accepted")
}
