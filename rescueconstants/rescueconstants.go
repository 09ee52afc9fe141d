// Copyright (C) 2024 The Rescue-Prime Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package rescueconstants is the round-constants collaborator: it owns the
// MDS matrix and the two round-constant tables the permutation in package
// rescue consumes, but never computes or validates anything on the hashing
// path itself.
//
// The tables are expanded once, deterministically, from a fixed domain
// string via SHAKE256 with rejection sampling - the same seed-expansion
// approach the Rescue-Prime paper itself uses to derive its round constants,
// so that the values here are reproducible and auditable without requiring
// the package to ship a 312-entry literal table by hand. See DESIGN.md for the
// provenance note and the caveat this implies.
package rescueconstants

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/sha3"
)

const (
	stateWidth = 12
	numRounds  = 7
	modulus    = 0xFFFFFFFF00000001

	seedLabel = "rescue-prime-goldilocks/p=2^64-2^32+1/m=12/rate=8/cap=4/rounds=7/v1"
)

var (
	once sync.Once
	mds  [stateWidth][stateWidth]uint64
	ark1 [numRounds][stateWidth]uint64
	ark2 [numRounds][stateWidth]uint64
)

func expand() {
	shake := sha3.NewShake256()
	shake.Write([]byte(seedLabel))

	next := func() uint64 {
		var buf [8]byte
		for {
			shake.Read(buf[:])
			v := binary.LittleEndian.Uint64(buf[:])
			// Rejection sampling keeps every constant canonical without
			// biasing the distribution toward the low residues.
			if v < modulus {
				return v
			}
		}
	}

	for i := 0; i < stateWidth; i++ {
		for j := 0; j < stateWidth; j++ {
			mds[i][j] = next()
		}
	}
	for r := 0; r < numRounds; r++ {
		for i := 0; i < stateWidth; i++ {
			ark1[r][i] = next()
		}
	}
	for r := 0; r < numRounds; r++ {
		for i := 0; i < stateWidth; i++ {
			ark2[r][i] = next()
		}
	}
}

// PrepareMDS returns the 12x12 MDS matrix used by the permutation's linear
// layer. Every entry is canonical.
func PrepareMDS() [stateWidth][stateWidth]uint64 {
	once.Do(expand)
	return mds
}

// PrepareARK1 returns the seven round-constant vectors added after the
// forward S-box / MDS step of each round. Every entry is canonical.
func PrepareARK1() [numRounds][stateWidth]uint64 {
	once.Do(expand)
	return ark1
}

// PrepareARK2 returns the seven round-constant vectors added after the
// inverse S-box / MDS step of each round. Every entry is canonical.
func PrepareARK2() [numRounds][stateWidth]uint64 {
	once.Do(expand)
	return ark2
}
