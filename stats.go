package main

import (
	"math"
	"sort"
)

// SampleSet is the ordered sequence of valid numbers loaded from one input
// file. Insertion order is input order; the statistics never reorder it,
// median and mode work on derived views.
type SampleSet []float64

type ModeKind int

const (
	ModeNone ModeKind = iota
	ModeSingle
	ModeMultiple
)

// ModeResult is a tagged mode outcome. Kind is ModeNone when every value
// occurs exactly once; otherwise Values holds the value(s) sharing the
// maximum frequency, in ascending order.
type ModeResult struct {
	Kind   ModeKind
	Values []float64
}

type Stats struct {
	Count    int
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
	Mode     ModeResult
	Variance float64
	StdDev   float64
}

// calculateStatistics computes every measure for a non-empty sample set.
// Variance is population variance (divisor n) and the standard deviation is
// its square root, so the two always agree. The input slice is never
// mutated; sorting happens on a copy.
func calculateStatistics(samples SampleSet) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	s := append([]float64(nil), samples...)
	sort.Float64s(s)
	n := len(s)

	mean := 0.0
	for _, v := range s {
		mean += v
	}
	mean /= float64(n)

	var median float64
	if n%2 == 1 {
		median = s[n/2]
	} else {
		median = (s[n/2-1] + s[n/2]) / 2.0
	}

	var sumsq float64
	for _, v := range s {
		d := v - mean
		sumsq += d * d
	}
	variance := sumsq / float64(n)

	return Stats{
		Count:    n,
		Min:      s[0],
		Max:      s[n-1],
		Mean:     mean,
		Median:   median,
		Mode:     calculateMode(samples),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}
}

func calculateMode(samples SampleSet) ModeResult {
	freq := make(map[float64]int, len(samples))
	maxFreq := 0
	for _, v := range samples {
		freq[v]++
		if freq[v] > maxFreq {
			maxFreq = freq[v]
		}
	}
	if maxFreq <= 1 {
		return ModeResult{Kind: ModeNone}
	}

	modes := make([]float64, 0, 1)
	for v, c := range freq {
		if c == maxFreq {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)

	kind := ModeSingle
	if len(modes) > 1 {
		kind = ModeMultiple
	}
	return ModeResult{Kind: kind, Values: modes}
}
