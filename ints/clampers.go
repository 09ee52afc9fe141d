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

// Package ints has the small integer-bounds and random-corpus helpers the
// CLI commands share. Nothing here is specific to hashing; it exists so
// cmd/rpbench doesn't reimplement flag-clamping and corpus generation.
package ints

import (
	"crypto/rand"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/itzmeanjan/rescue-prime/field"
)

// Clamp returns x if it is in [lo, hi], otherwise the nearest bound.
func Clamp[T constraints.Integer](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RandomFieldElements fills out with pseudo-random field elements, each
// reduced to canonical [0, p) form - a corpus generator for cmd/rpbench's
// HashElements/Merge timing loops.
func RandomFieldElements(out []uint64) error {
	if len(out) == 0 {
		return nil
	}
	if err := fillRandom(out); err != nil {
		return err
	}
	for i, v := range out {
		out[i] = field.ToCanonicalScalar(v)
	}
	return nil
}

// fillRandom fills out with raw bytes from a cryptographically strong
// random number generator, reinterpreted in place as out's element type.
func fillRandom[T constraints.Integer](out []T) error {
	_, err := rand.Read(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(out)*int(unsafe.Sizeof(out[0]))))
	return err
}
