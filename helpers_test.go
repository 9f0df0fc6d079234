package seisfile_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleValue is the synthetic sample of channel ch in frame i.
func sampleValue(i, ch int) int32 {
	return int32(i*10 + ch)
}

// column returns the synthetic samples of one channel for frames [from, to).
func column(ch, from, to int) []int32 {
	out := make([]int32, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		out = append(out, sampleValue(i, ch))
	}
	return out
}

// writeRecording writes header followed by frames of interleaved samples.
func writeRecording(t testing.TB, dir, name string, header []byte, channels, frames int) string {
	t.Helper()

	buf := bytes.NewBuffer(header)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			require.NoError(t, binary.Write(buf, binary.LittleEndian, sampleValue(i, ch)))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// headerBytes allocates a full header for channels.
func headerBytes(channels int) []byte {
	return make([]byte, 120+72*channels)
}

// baikal7Header builds a Baikal-7 header starting seconds after 1980-01-01.
func baikal7Header(channels, frequency uint16, seconds uint64, lat, lon float64) []byte {
	b := headerBytes(int(channels))
	binary.LittleEndian.PutUint16(b[0:], channels)
	binary.LittleEndian.PutUint16(b[22:], frequency)
	binary.LittleEndian.PutUint64(b[72:], math.Float64bits(lat))
	binary.LittleEndian.PutUint64(b[80:], math.Float64bits(lon))
	binary.LittleEndian.PutUint64(b[104:], seconds*256_000_000)
	return b
}

// baikal8Header builds a Baikal-8 header.
func baikal8Header(channels uint16, year, month, day uint16, period, seconds float64) []byte {
	b := headerBytes(int(channels))
	binary.LittleEndian.PutUint16(b[0:], channels)
	binary.LittleEndian.PutUint16(b[6:], day)
	binary.LittleEndian.PutUint16(b[8:], month)
	binary.LittleEndian.PutUint16(b[10:], year)
	binary.LittleEndian.PutUint64(b[48:], math.Float64bits(period))
	binary.LittleEndian.PutUint64(b[56:], math.Float64bits(seconds))
	binary.LittleEndian.PutUint64(b[72:], math.Float64bits(51.5))
	binary.LittleEndian.PutUint64(b[80:], math.Float64bits(104.25))
	return b
}

// sigmaHeader builds a Sigma header.
func sigmaHeader(channels, frequency uint16, lat, lon string, date, clock uint32) []byte {
	b := headerBytes(int(channels))
	binary.LittleEndian.PutUint16(b[12:], channels)
	binary.LittleEndian.PutUint16(b[24:], frequency)
	copy(b[40:48], lat)
	copy(b[48:57], lon)
	binary.LittleEndian.PutUint32(b[60:], date)
	binary.LittleEndian.PutUint32(b[64:], clock)
	return b
}
