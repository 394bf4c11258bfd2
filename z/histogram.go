/*
 * Copyright 2024 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package z

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// HistogramBounds creates bounds for a histogram. The bounds are powers of two
// of the form [2^minExponent, ..., 2^maxExponent].
func HistogramBounds(minExponent, maxExponent uint32) []float64 {
	var bounds []float64
	for i := minExponent; i <= maxExponent; i++ {
		bounds = append(bounds, float64(int64(1)<<i))
	}
	return bounds
}

// HistogramData buckets int64 samples. Bucket i counts samples below
// Bounds[i] and at or above Bounds[i-1]; the last bucket is unbounded.
type HistogramData struct {
	Bounds         []float64
	Count          int64
	CountPerBucket []int64
	Min            int64
	Max            int64
	Sum            int64
}

// NewHistogramData returns a new instance of HistogramData with properly initialized fields.
func NewHistogramData(bounds []float64) *HistogramData {
	return &HistogramData{
		Bounds:         bounds,
		CountPerBucket: make([]int64, len(bounds)+1),
		Max:            0,
		Min:            math.MaxInt64,
	}
}

// Copy returns a deep copy of the histogram.
func (histogram *HistogramData) Copy() *HistogramData {
	if histogram == nil {
		return nil
	}
	out := *histogram
	out.Bounds = append([]float64(nil), histogram.Bounds...)
	out.CountPerBucket = append([]int64(nil), histogram.CountPerBucket...)
	return &out
}

// Update records one sample.
func (histogram *HistogramData) Update(value int64) {
	if value > histogram.Max {
		histogram.Max = value
	}
	if value < histogram.Min {
		histogram.Min = value
	}

	histogram.Sum += value
	histogram.Count++

	for index := 0; index <= len(histogram.Bounds); index++ {
		// Allocate value in the last buckets if we reached the end of the Bounds array.
		if index == len(histogram.Bounds) {
			histogram.CountPerBucket[index]++
			break
		}

		if value < int64(histogram.Bounds[index]) {
			histogram.CountPerBucket[index]++
			break
		}
	}
}

// Mean returns the average sample, or 0 without samples.
func (histogram *HistogramData) Mean() float64 {
	if histogram == nil || histogram.Count == 0 {
		return 0
	}
	return float64(histogram.Sum) / float64(histogram.Count)
}

// Percentile returns the upper bound of the bucket holding the sample at rank
// p, with p in [0, 1]. Samples past the last bound report the last bound.
func (histogram *HistogramData) Percentile(p float64) float64 {
	if histogram == nil || histogram.Count == 0 {
		return 0
	}
	want := int64(math.Ceil(p * float64(histogram.Count)))
	if want < 1 {
		want = 1
	}
	var seen int64
	for index, count := range histogram.CountPerBucket {
		seen += count
		if seen >= want && index < len(histogram.Bounds) {
			return histogram.Bounds[index]
		}
	}
	return histogram.Bounds[len(histogram.Bounds)-1]
}

// String renders the histogram treating samples as nanoseconds.
func (histogram *HistogramData) String() string {
	if histogram == nil || histogram.Count == 0 {
		return ""
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Samples: %s Min: %s Max: %s Mean: %s\n",
		humanize.Comma(histogram.Count), time.Duration(histogram.Min),
		time.Duration(histogram.Max), time.Duration(histogram.Mean()))
	fmt.Fprintf(&buf, "%24s %12s\n", "Range", "Count")

	numBounds := len(histogram.Bounds)
	for index, count := range histogram.CountPerBucket {
		if count == 0 {
			continue
		}

		// The last bucket represents the bucket that contains the range from
		// the last bound up to infinity so it's processed differently than the
		// other buckets.
		if index == len(histogram.CountPerBucket)-1 {
			lowerBound := time.Duration(histogram.Bounds[numBounds-1])
			fmt.Fprintf(&buf, "[%10s, %10s) %12s\n", lowerBound, "infinity", humanize.Comma(count))
			continue
		}

		upperBound := time.Duration(histogram.Bounds[index])
		lowerBound := time.Duration(0)
		if index > 0 {
			lowerBound = time.Duration(histogram.Bounds[index-1])
		}

		fmt.Fprintf(&buf, "[%10s, %10s) %12s\n", lowerBound, upperBound, humanize.Comma(count))
	}
	return buf.String()
}
