// Copyright (C) 2026 The Authors.
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

// p16bench reports the detected AVX-512 feature level and measures
// solver throughput across a spread of synthetic prefix lengths, so both
// solver strategies get exercised.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/p16pow/p16solver/internal/cpufeature"
	"github.com/p16pow/p16solver/internal/testcorpus"
	"github.com/p16pow/p16solver/solver"
)

func main() {
	difficulty := flag.Uint64("difficulty", 20_000, "challenge difficulty factor used for every length")
	flag.Parse()

	fmt.Printf("detected CPU feature level: %s\n", cpufeature.Detect())
	if *difficulty == 0 || *difficulty > 1<<32-1 {
		fmt.Fprintln(os.Stderr, "-difficulty out of range")
		os.Exit(1)
	}
	target := solver.ComputeTarget(uint32(*difficulty))

	for _, n := range testcorpus.Lengths() {
		prefix := testcorpus.Prefix(0xfeedface, 0, n)
		s, ok := solver.New(prefix)
		if !ok {
			fmt.Printf("len=%-4d  could not construct a solver\n", n)
			continue
		}
		start := time.Now()
		nonce, _, ok := s.Solve(target)
		elapsed := time.Since(start)
		if !ok {
			fmt.Printf("len=%-4d  keyspace exhausted\n", n)
			continue
		}
		strategy := "single"
		if _, isDouble := s.(*solver.DoubleBlock); isDouble {
			strategy = "double"
		}
		fmt.Printf("len=%-4d  strategy=%-6s  nonce=%-12d  elapsed=%s\n", n, strategy, nonce, elapsed)
	}
}
