// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy - random material for DNA derivation
//
// a Source yields 32 bytes per call; the ledger never calls the
// operating system directly so tests can substitute a canned source
// and replay an exact breeding outcome
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/critterlab/critterd/blockheader"
)

// Source - supplier of random material
//
// the tag separates independent draws inside one operation, e.g. the
// DNA draw from the gender draw
type Source interface {
	Random(tag []byte) [32]byte
}

// a chained generator: every draw hashes the seed together with the
// current height, a call counter and the caller's tag
type generator struct {
	sync.Mutex
	seed  [32]byte
	nonce uint64
}

// New - create a source from seed material
//
// the same seed replays the same sequence of draws
func New(seed []byte) Source {
	g := &generator{}
	g.seed = blake2b.Sum256(seed)
	return g
}

// NewSystem - create a source seeded from the operating system
func NewSystem() (Source, error) {
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}
	return New(seed), nil
}

// Random - produce 32 bytes of random material
func (g *generator) Random(tag []byte) [32]byte {
	g.Lock()
	nonce := g.nonce
	g.nonce += 1
	g.Unlock()

	buffer := make([]byte, 0, len(g.seed)+16+len(tag))
	buffer = append(buffer, g.seed[:]...)

	height := make([]byte, 8)
	binary.BigEndian.PutUint64(height, blockheader.Height())
	buffer = append(buffer, height...)

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, nonce)
	buffer = append(buffer, n...)

	buffer = append(buffer, tag...)

	return blake2b.Sum256(buffer)
}
