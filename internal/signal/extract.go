package signal

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"

	"github.com/simonhull/seisfile/internal/types"
)

// Window locates a run of samples of one channel inside a recording.
type Window struct {
	HeaderSize int64 // bytes before the first frame
	Channels   int64 // interleaved channels per frame
	Column     int64 // channel to read
	Start      int64 // first frame index
	Count      int64 // number of frames
}

// Offset returns the byte offset of the first sample.
func (w Window) Offset() int64 {
	return w.HeaderSize + types.SampleSize*w.Channels*w.Start + types.SampleSize*w.Column
}

// Stride returns the distance in bytes between consecutive samples of the
// channel.
func (w Window) Stride() int64 {
	return types.SampleSize * w.Channels
}

// End returns the offset one past the last byte the window reads.
func (w Window) End() int64 {
	if w.Count <= 0 {
		return w.Offset()
	}
	return w.Offset() + (w.Count-1)*w.Stride() + types.SampleSize
}

// ReadFile maps path read-only and reads the window. The mapping is
// released before returning.
func ReadFile(path string, w Window) (samples []int32, err error) {
	if w.Offset() < 0 || w.Count <= 0 {
		return []int32{}, nil
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: map %s: %v", types.ErrIO, path, err)
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			samples, err = nil, fmt.Errorf("%w: unmap %s: %v", types.ErrIO, path, cerr)
		}
	}()

	return Read(m, int64(m.Len()), w)
}

// Read reads the window's samples from r, which holds size bytes. Only the
// selected channel's bytes are copied out.
func Read(r io.ReaderAt, size int64, w Window) ([]int32, error) {
	if w.Offset() < 0 || w.Count <= 0 {
		return []int32{}, nil
	}
	if end := w.End(); end > size {
		return nil, fmt.Errorf("%w: window ends at byte %d beyond size %d: %v",
			types.ErrIO, end, size, io.ErrUnexpectedEOF)
	}

	samples := make([]int32, w.Count)
	buf := make([]byte, types.SampleSize)
	off := w.Offset()
	stride := w.Stride()

	for i := range samples {
		if _, err := r.ReadAt(buf, off); err != nil {
			return nil, fmt.Errorf("%w: sample %d at offset %d: %v", types.ErrIO, i, off, err)
		}
		samples[i] = int32(binary.LittleEndian.Uint32(buf))
		off += stride
	}

	return samples, nil
}
