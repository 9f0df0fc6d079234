package signal

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simonhull/seisfile/internal/types"
)

// interleaved builds a recording body of frames with channels interleaved.
// The sample of channel c in frame i is i*100 + c, negated for odd frames.
func interleaved(headerSize int64, channels, frames int) []byte {
	buf := bytes.NewBuffer(make([]byte, headerSize))
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			v := int32(i*100 + c)
			if i%2 == 1 {
				v = -v
			}
			_ = binary.Write(buf, binary.LittleEndian, v)
		}
	}
	return buf.Bytes()
}

func expected(channels, column, start, count int) []int32 {
	out := make([]int32, count)
	for i := range out {
		frame := start + i
		v := int32(frame*100 + column)
		if frame%2 == 1 {
			v = -v
		}
		out[i] = v
	}
	return out
}

func TestColumn(t *testing.T) {
	tests := []struct {
		component byte
		channels  uint16
		want      int
	}{
		{'Z', 3, 0},
		{'X', 3, 1},
		{'Y', 3, 2},
		{'Z', 6, 3},
		{'X', 6, 4},
		{'Y', 6, 5},
		{'Z', 4, 3},
	}

	for _, tt := range tests {
		got, err := Column(tt.component, tt.channels)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%c with %d channels", tt.component, tt.channels)
	}
}

func TestColumn_Errors(t *testing.T) {
	_, err := Column('N', 3)
	require.ErrorIs(t, err, types.ErrUnknownComponent)

	_, err = Column('z', 3)
	require.ErrorIs(t, err, types.ErrUnknownComponent)

	_, err = Column('X', 4)
	require.ErrorIs(t, err, types.ErrComponentOutOfRange)

	_, err = Column('Z', 1)
	require.ErrorIs(t, err, types.ErrComponentOutOfRange)
}

func TestWindow_Geometry(t *testing.T) {
	w := Window{HeaderSize: 336, Channels: 3, Column: 2, Start: 10, Count: 5}
	require.Equal(t, int64(336+12*10+8), w.Offset())
	require.Equal(t, int64(12), w.Stride())
	require.Equal(t, w.Offset()+4*12+4, w.End())

	w = Window{HeaderSize: 552, Channels: 6, Column: 3, Start: 0, Count: 1}
	require.Equal(t, int64(552+12), w.Offset())
	require.Equal(t, int64(24), w.Stride())
}

func TestRead(t *testing.T) {
	data := interleaved(336, 3, 50)

	for column := 0; column < 3; column++ {
		w := Window{HeaderSize: 336, Channels: 3, Column: int64(column), Start: 7, Count: 20}
		got, err := Read(bytes.NewReader(data), int64(len(data)), w)
		require.NoError(t, err)
		require.Equal(t, expected(3, column, 7, 20), got)
	}
}

func TestRead_EmptyWindows(t *testing.T) {
	data := interleaved(336, 3, 4)

	for _, w := range []Window{
		{HeaderSize: 336, Channels: 3, Start: 0, Count: 0},
		{HeaderSize: 336, Channels: 3, Start: 2, Count: -3},
		{HeaderSize: 336, Channels: 3, Start: -100, Count: 3},
	} {
		got, err := Read(bytes.NewReader(data), int64(len(data)), w)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestRead_PastEnd(t *testing.T) {
	data := interleaved(336, 3, 4)
	w := Window{HeaderSize: 336, Channels: 3, Column: 0, Start: 2, Count: 3}

	_, err := Read(bytes.NewReader(data), int64(len(data)), w)
	require.ErrorIs(t, err, types.ErrIO)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.00")
	require.NoError(t, os.WriteFile(path, interleaved(552, 6, 100), 0o644))

	w := Window{HeaderSize: 552, Channels: 6, Column: 4, Start: 0, Count: 100}
	got, err := ReadFile(path, w)
	require.NoError(t, err)
	require.Equal(t, expected(6, 4, 0, 100), got)
}

func TestReadFile_Missing(t *testing.T) {
	w := Window{HeaderSize: 336, Channels: 3, Count: 1}
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.00"), w)
	require.ErrorIs(t, err, types.ErrIO)
}

func TestReadFile_RepeatedCallsReleaseMappings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.00")
	require.NoError(t, os.WriteFile(path, interleaved(336, 3, 10), 0o644))

	ok := Window{HeaderSize: 336, Channels: 3, Start: 0, Count: 10}
	bad := Window{HeaderSize: 336, Channels: 3, Start: 5, Count: 10}

	// Far more iterations than a default file descriptor limit.
	for i := 0; i < 5000; i++ {
		_, err := ReadFile(path, ok)
		require.NoError(t, err)
		_, err = ReadFile(path, bad)
		require.ErrorIs(t, err, types.ErrIO)
	}
}

func BenchmarkReadFile(b *testing.B) {
	path := filepath.Join(b.TempDir(), "record.00")
	if err := os.WriteFile(path, interleaved(336, 3, 100_000), 0o644); err != nil {
		b.Fatal(err)
	}
	w := Window{HeaderSize: 336, Channels: 3, Column: 1, Start: 0, Count: 100_000}

	b.ResetTimer()
	for b.Loop() {
		if _, err := ReadFile(path, w); err != nil {
			b.Fatal(err)
		}
	}
}
