package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() StatisticsReport {
	return StatisticsReport{
		Timestamp:     time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		InputPath:     "data.txt",
		ValidCount:    4,
		RejectedCount: 1,
		Stats: Stats{
			Count: 4, Min: 1, Max: 4, Mean: 2.5, Median: 2.5,
			Mode:     ModeResult{Kind: ModeNone},
			Variance: 1.25, StdDev: 1.118033988749895,
		},
		Elapsed: 125 * time.Microsecond,
	}
}

func TestFormatReportBlock(t *testing.T) {
	block := formatReport(sampleReport())

	assert.Contains(t, block, "Run recorded at: 2026-03-14 09:26:53")
	assert.Contains(t, block, "Valid samples:        4")
	assert.Contains(t, block, "Rejected entries:     1")
	assert.Contains(t, block, "Mean:                 2.5000")
	assert.Contains(t, block, "Median:               2.5000")
	assert.Contains(t, block, "Mode:                 no mode (all values occur once)")
	assert.Contains(t, block, "Variance:             1.2500")
	assert.Contains(t, block, "Standard deviation:   1.1180")
	assert.Contains(t, block, "Computation time: 0.000125 seconds")
	assert.True(t, strings.HasSuffix(block, "\n\n"), "block must end with a blank separator line")
}

func TestFormatReportNoValidData(t *testing.T) {
	rep := StatisticsReport{
		Timestamp:     time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		InputPath:     "empty.txt",
		RejectedCount: 3,
		NoValidData:   true,
	}
	block := formatReport(rep)

	assert.Contains(t, block, "No valid numeric data found")
	assert.Contains(t, block, "Rejected entries:     3")
	assert.NotContains(t, block, "Mean:")
	assert.NotContains(t, block, "Computation time:")
}

func TestFormatModeVariants(t *testing.T) {
	assert.Equal(t, "4.5000", formatMode(ModeResult{Kind: ModeSingle, Values: []float64{4.5}}))
	assert.Equal(t, "multiple: 1.0000, 2.0000",
		formatMode(ModeResult{Kind: ModeMultiple, Values: []float64{1, 2}}))
	assert.Equal(t, "no mode (all values occur once)", formatMode(ModeResult{Kind: ModeNone}))
}

func TestAppendReportCreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "StatisticsResults.txt")

	first := sampleReport()
	require.NoError(t, appendReport(path, first))

	afterFirst, err := os.ReadFile(path)
	require.NoError(t, err)

	second := sampleReport()
	second.Timestamp = second.Timestamp.Add(time.Hour)
	require.NoError(t, appendReport(path, second))

	afterSecond, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Greater(t, len(afterSecond), len(afterFirst), "file length must strictly increase")
	assert.True(t, strings.HasPrefix(string(afterSecond), string(afterFirst)),
		"first block must remain untouched")
	assert.Contains(t, string(afterSecond), "Run recorded at: 2026-03-14 10:26:53")
}

func TestAppendReportUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "StatisticsResults.txt")
	err := appendReport(path, sampleReport())
	require.Error(t, err)

	var writeErr *OutputWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Contains(t, writeErr.Error(), "StatisticsResults.txt")
}
