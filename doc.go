// Package seisfile reads seismograph recordings in the Baikal-7, Baikal-8
// and Sigma binary layouts.
//
// # Quick Start
//
// Reading the vertical component of a recording:
//
//	file, err := seisfile.Open("105_2023-01-15_10-00-00_Baikal8_CME.xx")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s %d Hz, %d channels, %s\n", file.Format,
//		file.Header.Frequency, file.Header.ChannelCount, file.FormattedDuration())
//
//	z, err := file.Extract(seisfile.ComponentZ)
//
// # Supported Formats
//
// The format is chosen by extension only:
//
//   - .00: Baikal-7, time base counted in 1/256e6 s ticks from 1980-01-01
//   - .xx: Baikal-8, calendar date plus seconds, sample period in seconds
//   - .bin: Sigma, ASCII coordinates and YYMMDD/HHMMSS timestamps
//
// Every format stores 32-bit little-endian signed samples, interleaved by
// channel, after a header of 120 + 72*channels bytes.
//
// # Intervals
//
// A File exposes three intervals:
//
//	OriginInterval  - start time and duration as stored in the header
//	RecordInterval  - origin shifted by the format offset (+2s for Sigma)
//	ReadInterval    - what Extract reads; defaults to RecordInterval
//
// SetReadStart and SetReadStop validate each bound against the record
// interval independently:
//
//	err := file.SetReadStart(file.RecordInterval().Start.Add(10 * time.Second))
//	if errors.Is(err, seisfile.ErrInvalidDateTime) {
//		// outside the record
//	}
//
// # Extraction
//
// Extract maps the file read-only for the duration of the call and copies
// only the requested channel. Samples can be decimated by block summation
// and have their mean removed:
//
//	z, err := file.Extract(seisfile.ComponentZ,
//		seisfile.WithResampleFrequency(100),
//		seisfile.WithRemoveMean(),
//	)
//
// Files with more than three channels carry a second sensor in channels
// 0-2; components Z, X and Y then map to channels 3-5.
//
// # Error Handling
//
// Errors are typed (OpenError, HeaderError, ExtractError, IntervalError)
// and wrap sentinel values for errors.Is:
//
//	if errors.Is(err, seisfile.ErrUnsupportedExtension) {
//		// skip the file
//	}
//
// With WithLenientHeaders, malformed Sigma timestamps and coordinates are
// replaced by placeholders and reported in File.Warnings instead.
package seisfile
