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

// Command rpbench is the micro-benchmark harness: it times HashElements and
// Merge over a random element corpus, alongside a few fixed-output-size
// baseline hashes for comparison context. It is a manual timing loop in the
// teacher's own style, not a `go test -bench` harness.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/itzmeanjan/rescue-prime/ints"
	"github.com/itzmeanjan/rescue-prime/internal/lanewidth"
	"github.com/itzmeanjan/rescue-prime/rescue"
	"github.com/itzmeanjan/rescue-prime/rescueconstants"
)

var (
	dashN    int
	dashSize int
	dashMin  int
	dashMax  int
)

func init() {
	flag.IntVar(&dashN, "n", 10000, "number of iterations per benchmark")
	flag.IntVar(&dashSize, "size", 64, "number of field elements to hash per iteration")
	flag.IntVar(&dashMin, "min", 1, "minimum allowed -size")
	flag.IntVar(&dashMax, "max", 1<<20, "maximum allowed -size")
}

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

func bench(name string, n int, run func()) {
	start := time.Now()
	for i := 0; i < n; i++ {
		run()
	}
	elapsed := time.Since(start)
	fmt.Printf("%-20s %10d iters  %12s total  %12s/iter\n",
		name, n, elapsed.Round(time.Microsecond), (elapsed / time.Duration(n)).Round(time.Nanosecond))
}

func main() {
	flag.Parse()

	size := ints.Clamp(dashSize, dashMin, dashMax)
	report := lanewidth.Detect()
	fmt.Printf("lane width hint: %d (avx512=%v avx2=%v)\n", report.Recommended, report.HasAVX512, report.HasAVX2)

	elements := make([]uint64, size)
	if err := ints.RandomFieldElements(elements); err != nil {
		fatalf("generating corpus: %v", err)
	}
	var merge8 [rescue.Rate]uint64
	copy(merge8[:], elements)

	mds := rescue.Matrix(rescueconstants.PrepareMDS())
	ark1 := rescue.RoundConstants(rescueconstants.PrepareARK1())
	ark2 := rescue.RoundConstants(rescueconstants.PrepareARK2())

	bench("rescue.HashElements", dashN, func() {
		_ = rescue.HashElements(elements, mds, ark1, ark2)
	})
	bench("rescue.Merge", dashN, func() {
		_ = rescue.Merge(merge8, mds, ark1, ark2)
	})

	buf := make([]byte, size*8)
	if _, err := rand.Read(buf); err != nil {
		fatalf("generating byte corpus: %v", err)
	}

	bench("blake2b-256 (baseline)", dashN, func() {
		h, _ := blake2b.New256(nil)
		h.Write(buf)
		_ = h.Sum(nil)
	})
	bench("sha3-256 (baseline)", dashN, func() {
		h := sha3.New256()
		h.Write(buf)
		_ = h.Sum(nil)
	})
	bench("siphash-128 (baseline)", dashN, func() {
		_, _ = siphash.Hash128(0, 0, buf)
	})
}
