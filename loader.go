package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// RejectedEntry records one token that failed numeric parsing, with its
// 1-based source line. Rejections are diagnostic only and never enter any
// statistic.
type RejectedEntry struct {
	Line  int
	Token string
}

// FileAccessError means the input file could not be read at all: missing,
// not a regular file, or an open/read failure. It is fatal; per-token parse
// failures are not.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read input file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// loadSamples reads an input file and parses every whitespace-delimited
// token as one candidate number. Malformed tokens are logged, recorded and
// counted but never abort the run.
func loadSamples(path string) (SampleSet, []RejectedEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, &FileAccessError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, nil, &FileAccessError{Path: path, Err: errors.New("not a regular file")}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	samples, rejected, err := parseSamples(file)
	if err != nil {
		return nil, nil, &FileAccessError{Path: path, Err: err}
	}
	return samples, rejected, nil
}

// parseSamples accepts whatever strconv.ParseFloat accepts (optional sign,
// digits, optional fraction, optional exponent) minus non-finite results:
// NaN and Inf spellings parse but are rejected.
func parseSamples(r io.Reader) (SampleSet, []RejectedEntry, error) {
	var samples SampleSet
	var rejected []RejectedEntry

	scanner := bufio.NewScanner(r)
	// The whole input may be a single line of tokens.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				log.WithFields(log.Fields{"line": line, "token": tok}).
					Warn("not a valid number, entry rejected")
				rejected = append(rejected, RejectedEntry{Line: line, Token: tok})
				continue
			}
			samples = append(samples, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return samples, rejected, nil
}
