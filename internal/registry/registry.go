// Package registry manages format-specific header decoders.
package registry

import (
	"github.com/simonhull/seisfile/internal/types"
)

// DecodeOptions tunes how strictly a decoder treats malformed fields.
type DecodeOptions struct {
	// Lenient substitutes placeholder values for unparsable timestamp and
	// coordinate fields and reports a warning instead of failing.
	Lenient bool
}

// HeaderDecoder is the interface all format decoders implement.
type HeaderDecoder interface {
	// Decode turns the leading header bytes of a recording into a Header.
	// It performs no I/O beyond the given buffer.
	Decode(data []byte, path string, opts DecodeOptions) (types.Header, []types.Warning, error)
}

// decoders maps formats to their decoders.
var decoders = make(map[types.Format]HeaderDecoder)

// Register registers a decoder for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, decoder HeaderDecoder) {
	decoders[format] = decoder
}

// Get returns the decoder for a given format.
// Returns nil if no decoder is registered for the format.
func Get(format types.Format) HeaderDecoder {
	return decoders[format]
}
