package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"
)

// resultsFileName is the fixed, append-only run history in the working
// directory.
const resultsFileName = "StatisticsResults.txt"

// StatisticsReport is one immutable run record. NoValidData marks the
// degraded variant appended when the input held no parsable numbers; Stats
// and Elapsed are zero in that case.
type StatisticsReport struct {
	Timestamp     time.Time
	InputPath     string
	ValidCount    int
	RejectedCount int
	Stats         Stats
	Elapsed       time.Duration
	NoValidData   bool
}

// OutputWriteError means the results file could not be opened or appended.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("cannot append results to %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

const (
	bannerLine = "============================================================"
	ruleLine   = "========================================"
)

// formatReport renders one self-contained report block, ending with a blank
// line so consecutive runs stay visually separated. Statistics are rounded
// to 4 decimal places for display only; elapsed time gets 6 so
// sub-millisecond runs don't print as zero.
func formatReport(rep StatisticsReport) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n", bannerLine)
	fmt.Fprintf(&b, "Run recorded at: %s\n", rep.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n", bannerLine)
	fmt.Fprintf(&b, "Input file: %s\n", rep.InputPath)

	if rep.NoValidData {
		fmt.Fprintf(&b, "%-22s%d\n", "Valid samples:", 0)
		fmt.Fprintf(&b, "%-22s%d\n", "Rejected entries:", rep.RejectedCount)
		b.WriteString("No valid numeric data found\n\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", ruleLine)
	fmt.Fprintf(&b, "%-22s%d\n", "Valid samples:", rep.ValidCount)
	fmt.Fprintf(&b, "%-22s%d\n", "Rejected entries:", rep.RejectedCount)
	fmt.Fprintf(&b, "%-22s%.4f\n", "Minimum:", rep.Stats.Min)
	fmt.Fprintf(&b, "%-22s%.4f\n", "Maximum:", rep.Stats.Max)
	fmt.Fprintf(&b, "%-22s%.4f\n", "Mean:", rep.Stats.Mean)
	fmt.Fprintf(&b, "%-22s%.4f\n", "Median:", rep.Stats.Median)
	fmt.Fprintf(&b, "%-22s%s\n", "Mode:", formatMode(rep.Stats.Mode))
	fmt.Fprintf(&b, "%-22s%.4f\n", "Variance:", rep.Stats.Variance)
	fmt.Fprintf(&b, "%-22s%.4f\n", "Standard deviation:", rep.Stats.StdDev)
	fmt.Fprintf(&b, "%s\n", ruleLine)
	fmt.Fprintf(&b, "Computation time: %.6f seconds\n\n", rep.Elapsed.Seconds())
	return b.String()
}

func formatMode(m ModeResult) string {
	switch m.Kind {
	case ModeNone:
		return "no mode (all values occur once)"
	case ModeSingle:
		return fmt.Sprintf("%.4f", m.Values[0])
	default:
		parts := make([]string, len(m.Values))
		for i, v := range m.Values {
			parts[i] = fmt.Sprintf("%.4f", v)
		}
		return "multiple: " + strings.Join(parts, ", ")
	}
}

// appendReport appends one formatted block to the results file, creating it
// if absent. The whole block goes out in a single Write on an append-mode
// handle, so two concurrent invocations cannot interleave lines.
func appendReport(path string, rep StatisticsReport) error {
	block := formatReport(rep)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	if _, err := f.Write([]byte(block)); err != nil {
		f.Close()
		return &OutputWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}
