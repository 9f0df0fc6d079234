package seisfile_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/simonhull/seisfile"
)

// BenchmarkOpen measures header decoding for a single recording.
func BenchmarkOpen(b *testing.B) {
	path := writeRecording(b, b.TempDir(), "bench.00", baikal7Header(3, 1000, 0, 0, 0), 3, 1000)

	b.ReportAllocs()
	for b.Loop() {
		file, err := seisfile.Open(path)
		if err != nil {
			b.Fatal(err)
		}
		_ = file
	}
}

// BenchmarkOpenMany measures concurrent opening of a batch of recordings.
func BenchmarkOpenMany(b *testing.B) {
	dir := b.TempDir()
	paths := make([]string, 32)
	for i := range paths {
		paths[i] = writeRecording(b, dir, fmt.Sprintf("bench%02d.bin", i),
			sigmaHeader(3, 100, "6644.66N", "07919.53E", 230115, 93005), 3, 100)
	}
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := seisfile.OpenMany(ctx, paths); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExtract measures a full-record extraction with resampling.
func BenchmarkExtract(b *testing.B) {
	path := writeRecording(b, b.TempDir(), "bench.00", baikal7Header(3, 1000, 0, 0, 0), 3, 600_000)
	file, err := seisfile.Open(path)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := file.Extract(seisfile.ComponentZ, seisfile.WithResampleFrequency(100), seisfile.WithRemoveMean()); err != nil {
			b.Fatal(err)
		}
	}
}
