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

// Package field implements lane-parallel arithmetic over the 64-bit
// Goldilocks prime field Z/pZ, p = 2^64 - 2^32 + 1.
//
// Every lane holds a value in [0, 2^64); that value's field class is itself
// mod p. Mul and Add accept non-canonical lanes and produce non-canonical
// lanes - callers reduce to [0, p) only at a boundary, via ToCanonical.
package field

import "math/bits"

// Modulus is the Goldilocks prime p = 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

// epsilon is 2^64 mod p, i.e. 2^32 - 1. Every correction below is a single
// add or sub of epsilon, because p was chosen to make that true.
const epsilon uint64 = 0xFFFFFFFF

// Lanes is a width-4 vector of field elements. The permutation state is laid
// out as three Lanes, the three-vectors-of-four-lanes form the spec admits
// as an alternative to a single 16-wide (padded) vector.
type Lanes [4]uint64

// Mul returns the lane-wise product a[i]*b[i] mod p, non-canonical in and
// non-canonical out.
func Mul(a, b Lanes) Lanes {
	return Lanes{
		MulScalar(a[0], b[0]),
		MulScalar(a[1], b[1]),
		MulScalar(a[2], b[2]),
		MulScalar(a[3], b[3]),
	}
}

// Add returns the lane-wise sum a[i]+b[i] mod p, non-canonical out. Only b's
// lanes are pre-reduced; see AddScalar.
func Add(a, b Lanes) Lanes {
	return Lanes{
		AddScalar(a[0], b[0]),
		AddScalar(a[1], b[1]),
		AddScalar(a[2], b[2]),
		AddScalar(a[3], b[3]),
	}
}

// ToCanonical reduces every lane to [0, p).
func ToCanonical(v Lanes) Lanes {
	return Lanes{
		ToCanonicalScalar(v[0]),
		ToCanonicalScalar(v[1]),
		ToCanonicalScalar(v[2]),
		ToCanonicalScalar(v[3]),
	}
}

// MulScalar returns a*b mod p for a, b in [0, 2^64); the result is in
// [0, 2^64) but not necessarily canonical.
//
// a*b is computed as a full 128-bit product (hi, lo), which is exactly the
// (ab_hi, ab_lo) pair a lane-parallel unit builds from four 32x32->64
// multiplies on the split halves of a and b. Reduction then exploits
// 2^64 = epsilon + 1 (mod p): split hi into c (low 32 bits) and d (high 32
// bits), then fold lo - d and (c<<32 - c) together, each step corrected by
// at most one add/sub of epsilon.
func MulScalar(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	c := hi & epsilon
	d := hi >> 32

	t0, borrow := bits.Sub64(lo, d, 0)
	t0 -= borrow * epsilon

	t1 := (c << 32) - c

	sum, carry := bits.Add64(t0, t1, 0)
	return sum + carry*epsilon
}

// AddScalar returns a+b mod p. a may be any value in [0, 2^64); b is
// pre-reduced to canonical form first. The two arguments are NOT
// interchangeable: the correction sequence below tolerates one 2^64
// overshoot in a but not two, so b must already be canonical going in.
func AddScalar(a, b uint64) uint64 {
	bCanon := b
	if b >= Modulus {
		bCanon = b - Modulus
	}
	sum, carry := bits.Add64(a, bCanon, 0)
	sum2, carry2 := bits.Add64(sum, carry*epsilon, 0)
	return sum2 + carry2*epsilon
}

// ToCanonicalScalar reduces v to [0, p).
func ToCanonicalScalar(v uint64) uint64 {
	if v >= Modulus {
		return v - Modulus
	}
	return v
}
