package main

import (
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// errNoValidData marks a degraded run: the report block was still appended
// so history is preserved, but the invocation must exit non-zero.
var errNoValidData = errors.New("no valid numeric data found in input")

// processFile runs the whole pipeline for one input file: load, compute,
// print, append, and archive the report if an archive database is
// configured. SampleSet and the report belong to this run alone; nothing is
// retained across invocations.
func processFile(inputPath, resultsPath string, archive *sql.DB) error {
	samples, rejected, err := loadSamples(inputPath)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		rep := StatisticsReport{
			Timestamp:     time.Now(),
			InputPath:     inputPath,
			RejectedCount: len(rejected),
			NoValidData:   true,
		}
		fmt.Print(formatReport(rep))
		if err := appendReport(resultsPath, rep); err != nil {
			return err
		}
		archiveIfConfigured(archive, rep)
		return errNoValidData
	}

	// Wall-clock brackets cover the computation only, no I/O. The memory
	// delta is informational and excluded from the timed window's meaning.
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	stats := calculateStatistics(samples)
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	rep := StatisticsReport{
		Timestamp:     time.Now(),
		InputPath:     inputPath,
		ValidCount:    stats.Count,
		RejectedCount: len(rejected),
		Stats:         stats,
		Elapsed:       elapsed,
	}
	fmt.Print(formatReport(rep))
	if err := appendReport(resultsPath, rep); err != nil {
		return err
	}
	archiveIfConfigured(archive, rep)

	log.WithFields(log.Fields{
		"input":    inputPath,
		"samples":  stats.Count,
		"rejected": len(rejected),
		"duration": elapsed,
		"memory":   humanize.Bytes(after.TotalAlloc - before.TotalAlloc),
	}).Info("statistics report appended")
	return nil
}

// archiveIfConfigured is best effort: the results file is the source of
// truth and an unreachable archive must not fail a run that already
// appended its report.
func archiveIfConfigured(db *sql.DB, rep StatisticsReport) {
	if db == nil {
		return
	}
	if err := archiveReport(db, rep); err != nil {
		log.WithError(err).Error("archiving report row failed")
	}
}
