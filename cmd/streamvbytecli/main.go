// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command streamvbytecli exercises the streamvbyte library end to end:
// encoding a newline-separated list of decimal uint32s to a file, decoding
// a file back to stdout-style decimal output, and a synthetic throughput
// benchmark.
//
// Usage:
//
//	streamvbytecli -mode encode -in values.txt -out values.svb
//	streamvbytecli -mode decode -in values.svb -out values.txt -n 12345
//	streamvbytecli -mode bench -n 1000000
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	streamvbyte "github.com/streamvbyte-go/streamvbyte"
)

var (
	mode  = flag.String("mode", "", "Operation: encode, decode, or bench (required)")
	in    = flag.String("in", "", "Input file (required for encode/decode)")
	out   = flag.String("out", "", "Output file (required for encode/decode)")
	count = flag.Int("n", 0, "Element count: required for decode, synthetic size for bench")
	seed  = flag.Int64("seed", 1, "PRNG seed for bench mode")
)

func main() {
	flag.Parse()

	var err error
	switch *mode {
	case "encode":
		err = runEncode(*in, *out)
	case "decode":
		err = runDecode(*in, *out, *count)
	case "bench":
		err = runBench(*count, *seed)
	default:
		fmt.Fprintf(os.Stderr, "Error: -mode must be one of encode, decode, bench\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runEncode reads one decimal uint32 per line from inPath and writes the
// wire-format encoding of the resulting sequence to outPath.
func runEncode(inPath, outPath string) error {
	if inPath == "" || outPath == "" {
		return fmt.Errorf("encode requires -in and -out")
	}
	values, err := readValues(inPath)
	if err != nil {
		return err
	}
	count, bytes := streamvbyte.Encode(values)
	if err := os.WriteFile(outPath, bytes, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("encoded %d values into %d bytes (%s)\n", count, len(bytes), outPath)
	return nil
}

// runDecode reads the wire-format encoding of n values from inPath and
// writes one decimal value per line to outPath.
func runDecode(inPath, outPath string, n int) error {
	if inPath == "" || outPath == "" {
		return fmt.Errorf("decode requires -in and -out")
	}
	if n <= 0 {
		return fmt.Errorf("decode requires -n > 0 (the original element count, carried out-of-band)")
	}
	bytes, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	values, err := streamvbyte.Decode(n, bytes)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	if err := writeValues(outPath, values); err != nil {
		return err
	}
	fmt.Printf("decoded %d values from %d bytes (%s)\n", len(values), len(bytes), outPath)
	return nil
}

// runBench encodes and decodes a synthetic sequence of n pseudo-random
// uint32 values drawn from seed, reporting wall-clock throughput for each
// direction. It exercises the dispatch facade's chosen implementation for
// the running build, same as any other caller of Encode/Decode.
func runBench(n int, seed int64) error {
	if n <= 0 {
		return fmt.Errorf("bench requires -n > 0")
	}
	rng := rand.New(rand.NewSource(seed))
	values := make([]uint32, n)
	for i := range values {
		values[i] = rng.Uint32()
	}

	encodeStart := time.Now()
	count, bytes := streamvbyte.Encode(values)
	encodeElapsed := time.Since(encodeStart)

	decodeStart := time.Now()
	decoded, err := streamvbyte.Decode(count, bytes)
	decodeElapsed := time.Since(decodeStart)
	if err != nil {
		return fmt.Errorf("bench round-trip failed: %w", err)
	}
	if len(decoded) != n {
		return fmt.Errorf("bench round-trip produced %d values, want %d", len(decoded), n)
	}

	encodeRate := float64(n) / encodeElapsed.Seconds() / 1e6
	decodeRate := float64(n) / decodeElapsed.Seconds() / 1e6
	fmt.Printf("n=%d bytes=%d encode=%s (%.1fM values/s) decode=%s (%.1fM values/s)\n",
		n, len(bytes), encodeElapsed, encodeRate, decodeElapsed, decodeRate)
	return nil
}

// readValues parses one decimal uint32 per line from path, skipping blank
// lines.
func readValues(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var values []uint32
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing %q in %s: %w", line, path, err)
		}
		values = append(values, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, nil
}

// writeValues writes one decimal value per line to path.
func writeValues(path string, values []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return w.Flush()
}
