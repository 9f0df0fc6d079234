// seisdump prints the header, intervals and samples of seismic recordings.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonhull/seisfile"
)

var (
	component   string
	startFlag   string
	stopFlag    string
	resampleHz  uint32
	removeMean  bool
	showSamples bool
	sampleLimit int
	jsonOutput  bool
	logLevel    string
	lenient     bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "seisdump [file ...]",
	Short: "Display Baikal-7, Baikal-8 and Sigma recordings",
	Long: `seisdump decodes the header of each recording and prints its geometry,
time intervals and station metadata. With --samples it also extracts one
component over the read interval.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "seisdump %s\n", seisfile.GetVersionInfo())
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("at least one file required")
		}

		logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			return err
		}

		opts := []seisfile.Option{seisfile.WithLogger(logger)}
		if lenient {
			opts = append(opts, seisfile.WithLenientHeaders())
		}

		files, err := seisfile.OpenMany(cmd.Context(), args, opts...)
		if err != nil {
			return err
		}

		for _, f := range files {
			if err := dump(cmd.OutOrStdout(), f); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "show version information")
	rootCmd.Flags().StringVarP(&component, "component", "c", "Z", "component to extract (Z, X or Y)")
	rootCmd.Flags().StringVar(&startFlag, "start", "", "read interval start (RFC 3339)")
	rootCmd.Flags().StringVar(&stopFlag, "stop", "", "read interval stop (RFC 3339)")
	rootCmd.Flags().Uint32VarP(&resampleHz, "resample", "r", 0, "resample frequency in Hz (0 keeps the file frequency)")
	rootCmd.Flags().BoolVar(&removeMean, "remove-mean", false, "subtract the mean from extracted samples")
	rootCmd.Flags().BoolVarP(&showSamples, "samples", "s", false, "extract and print samples")
	rootCmd.Flags().IntVarP(&sampleLimit, "limit", "l", 10, "number of samples to print (0 for all)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&lenient, "lenient", false, "tolerate malformed Sigma timestamps and coordinates")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: l}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// report is the JSON shape of one dumped recording.
type report struct {
	Record         seisfile.RecordFileInfo `json:"record"`
	Header         seisfile.Header         `json:"header"`
	Format         string                  `json:"format"`
	Duration       string                  `json:"duration"`
	OriginInterval seisfile.TimeInterval   `json:"origin_interval"`
	RecordInterval seisfile.TimeInterval   `json:"record_interval"`
	ReadInterval   seisfile.TimeInterval   `json:"read_interval"`
	Warnings       []string                `json:"warnings,omitempty"`
	Samples        []int32                 `json:"samples,omitempty"`
	HeaderSize     int64                   `json:"header_size"`
	SampleCount    int                     `json:"sample_count,omitempty"`
}

func dump(w io.Writer, f *seisfile.File) error {
	if err := applyInterval(f); err != nil {
		return err
	}

	r := report{
		Record:         f.RecordInfo(),
		Header:         f.Header,
		Format:         f.Format.String(),
		Duration:       f.FormattedDuration(),
		OriginInterval: f.OriginInterval(),
		RecordInterval: f.RecordInterval(),
		ReadInterval:   f.ReadInterval(),
		HeaderSize:     f.HeaderSize(),
	}
	for _, warn := range f.Warnings {
		r.Warnings = append(r.Warnings, warn.String())
	}

	if showSamples {
		samples, err := extract(f)
		if err != nil {
			return err
		}
		r.SampleCount = len(samples)
		if sampleLimit > 0 && len(samples) > sampleLimit {
			samples = samples[:sampleLimit]
		}
		r.Samples = samples
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	printText(w, r)
	return nil
}

func applyInterval(f *seisfile.File) error {
	if startFlag != "" {
		t, err := time.Parse(time.RFC3339Nano, startFlag)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		if err := f.SetReadStart(t); err != nil {
			return err
		}
	}
	if stopFlag != "" {
		t, err := time.Parse(time.RFC3339Nano, stopFlag)
		if err != nil {
			return fmt.Errorf("--stop: %w", err)
		}
		if err := f.SetReadStop(t); err != nil {
			return err
		}
	}
	return nil
}

func extract(f *seisfile.File) ([]int32, error) {
	c, err := seisfile.ParseComponent(component)
	if err != nil {
		return nil, err
	}

	var opts []seisfile.ExtractOption
	if resampleHz > 0 {
		opts = append(opts, seisfile.WithResampleFrequency(resampleHz))
	}
	if removeMean {
		opts = append(opts, seisfile.WithRemoveMean())
	}
	return f.Extract(c, opts...)
}

func printText(w io.Writer, r report) {
	fmt.Fprintf(w, "File:        %s\n", r.Record.Path)
	fmt.Fprintf(w, "Format:      %s\n", r.Format)
	fmt.Fprintf(w, "Channels:    %d\n", r.Header.ChannelCount)
	fmt.Fprintf(w, "Frequency:   %d Hz\n", r.Header.Frequency)
	fmt.Fprintf(w, "Coordinate:  %s\n", r.Header.Coordinate)
	fmt.Fprintf(w, "Header size: %d bytes\n", r.HeaderSize)
	fmt.Fprintf(w, "Frames:      %d\n", r.Record.DiscreteCount)
	fmt.Fprintf(w, "Duration:    %s\n", r.Duration)
	fmt.Fprintf(w, "Origin:      %s\n", r.OriginInterval)
	fmt.Fprintf(w, "Record:      %s\n", r.RecordInterval)
	fmt.Fprintf(w, "Read:        %s\n", r.ReadInterval)

	if n := r.Record.NameInfo; n != nil {
		fmt.Fprintf(w, "Station:     %d (registrator %s, sensor %s)\n", n.StationNumber, n.Registrator, n.Sensor)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "Warning:     %s\n", warn)
	}

	if r.Samples != nil {
		parts := make([]string, len(r.Samples))
		for i, v := range r.Samples {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "Samples:     %d extracted, first %d: [%s]\n", r.SampleCount, len(r.Samples), strings.Join(parts, " "))
	}
	fmt.Fprintln(w)
}
