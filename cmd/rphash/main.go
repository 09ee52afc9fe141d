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

// Command rphash is the smoke-test example binary: it hashes and merges a
// fixed 8-element input and prints both digests.
package main

import (
	"fmt"

	"github.com/itzmeanjan/rescue-prime/rescue"
	"github.com/itzmeanjan/rescue-prime/rescueconstants"
)

func main() {
	input := [rescue.Rate]uint64{0, 1, 2, 3, 4, 5, 6, 7}

	mds := rescue.Matrix(rescueconstants.PrepareMDS())
	ark1 := rescue.RoundConstants(rescueconstants.PrepareARK1())
	ark2 := rescue.RoundConstants(rescueconstants.PrepareARK2())

	hash := rescue.HashElements(input[:], mds, ark1, ark2)
	merge := rescue.Merge(input, mds, ark1, ark2)

	fmt.Printf("hash  (%v) = %v\n", input, hash)
	fmt.Printf("merge (%v) = %v\n", input, merge)
}
