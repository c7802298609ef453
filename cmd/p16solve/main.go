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

// p16solve solves a single mCaptcha-style proof-of-work challenge given
// on the command line and prints the winning nonce and digest.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/p16pow/p16solver/solver"
)

func main() {
	prefix := flag.String("prefix", "", "challenge prefix bytes, as hex")
	difficulty := flag.Uint64("difficulty", 50_000, "challenge difficulty factor")
	flag.Parse()

	runID := uuid.New()
	logger := log.New(os.Stderr, fmt.Sprintf("p16solve[%s] ", runID), log.LstdFlags)

	if *prefix == "" {
		logger.Fatal("-prefix is required (hex-encoded challenge prefix)")
	}
	if *difficulty == 0 || *difficulty > 1<<32-1 {
		logger.Fatalf("-difficulty must be in [1, %d]", uint32(1<<32-1))
	}

	raw, err := hex.DecodeString(*prefix)
	if err != nil {
		logger.Fatalf("decoding -prefix: %s", err)
	}

	s, ok := solver.New(raw)
	if !ok {
		logger.Fatal("could not construct a solver for this prefix")
	}

	target := solver.ComputeTarget(uint32(*difficulty))
	start := time.Now()
	nonce, digest, ok := s.Solve(target)
	elapsed := time.Since(start)
	if !ok {
		logger.Fatal("keyspace exhausted without a solution")
	}

	logger.Printf("solved in %s", elapsed)
	fmt.Printf("nonce=%d digest=%s\n", nonce, hex.EncodeToString(digest[:]))
}
