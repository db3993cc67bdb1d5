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

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "values.txt")
	svbPath := filepath.Join(dir, "values.svb")
	outPath := filepath.Join(dir, "roundtrip.txt")

	want := []uint32{0, 1, 300, 70000, 0x12345678}
	if err := writeValues(inPath, want); err != nil {
		t.Fatalf("writeValues: %v", err)
	}

	if err := runEncode(inPath, svbPath); err != nil {
		t.Fatalf("runEncode: %v", err)
	}
	if err := runDecode(svbPath, outPath, len(want)); err != nil {
		t.Fatalf("runDecode: %v", err)
	}

	got, err := readValues(outPath)
	if err != nil {
		t.Fatalf("readValues: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRunDecodeRequiresPositiveCount(t *testing.T) {
	dir := t.TempDir()
	if err := runDecode(filepath.Join(dir, "in"), filepath.Join(dir, "out"), 0); err == nil {
		t.Fatal("want error for -n 0")
	}
}

func TestRunEncodeMissingFlags(t *testing.T) {
	if err := runEncode("", "out"); err == nil {
		t.Fatal("want error for missing -in")
	}
	if err := runEncode("in", ""); err == nil {
		t.Fatal("want error for missing -out")
	}
}

func TestRunBench(t *testing.T) {
	if err := runBench(2048, 7); err != nil {
		t.Fatalf("runBench: %v", err)
	}
}

func TestRunBenchRequiresPositiveCount(t *testing.T) {
	if err := runBench(0, 1); err == nil {
		t.Fatal("want error for -n 0")
	}
}

func TestReadValuesRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte("1\nnotanumber\n3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := readValues(path); err == nil {
		t.Fatal("want error for non-numeric line")
	}
}

func TestReadValuesSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.txt")
	lines := []string{"1", "", "2", "", "3"}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	values, err := readValues(path)
	if err != nil {
		t.Fatalf("readValues: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("got %d values, want 3", len(values))
	}
	for i, want := range []uint32{1, 2, 3} {
		if values[i] != want {
			t.Errorf("value %d: got %d, want %d", i, values[i], want)
		}
	}
}

func TestWriteValuesFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := writeValues(path, []uint32{10, 20, 30}); err != nil {
		t.Fatalf("writeValues: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, want := range []uint32{10, 20, 30} {
		got, err := strconv.ParseUint(lines[i], 10, 32)
		if err != nil {
			t.Fatalf("parsing line %d: %v", i, err)
		}
		if uint32(got) != want {
			t.Errorf("line %d: got %d, want %d", i, got, want)
		}
	}
}
