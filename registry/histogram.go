// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"errors"
	"fmt"
	"math"

	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/proto"

	"github.com/autotuner/metrics-exporter/model"
)

// DefBuckets are the default histogram buckets, tailored to measure
// latencies in seconds.
var DefBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Bucket is one cumulative histogram bucket.
type Bucket struct {
	UpperBound      float64
	CumulativeCount uint64
}

// HistogramSnapshot is a copy of the state of a histogram. Buckets are in
// ascending order of UpperBound and always end with the +Inf bucket.
type HistogramSnapshot struct {
	Sum     float64
	Count   uint64
	Buckets []Bucket
}

type histogram struct {
	d Desc
	// upperBounds is strictly increasing and ends with +Inf.
	upperBounds []float64
	// counts are cumulative, counts[i] belongs to upperBounds[i].
	counts []uint64
	sum    float64
	count  uint64
}

// upperBounds validates buckets and returns them with +Inf appended.
func upperBounds(buckets []float64) ([]float64, error) {
	if len(buckets) == 0 {
		buckets = DefBuckets
	}
	bounds := make([]float64, 0, len(buckets)+1)
	for i, b := range buckets {
		if math.IsNaN(b) {
			return nil, errors.New("bucket upper bound must not be NaN")
		}
		if i > 0 && b <= buckets[i-1] {
			return nil, fmt.Errorf("bucket upper bounds must be strictly increasing, got %v after %v", b, buckets[i-1])
		}
		bounds = append(bounds, b)
	}
	if !math.IsInf(bounds[len(bounds)-1], +1) {
		bounds = append(bounds, math.Inf(+1))
	}
	return bounds, nil
}

func newHistogram(d Desc, bounds []float64) *histogram {
	d.Buckets = bounds
	return &histogram{
		d:           d,
		upperBounds: bounds,
		counts:      make([]uint64, len(bounds)),
	}
}

func (h *histogram) desc() *Desc { return &h.d }

func (h *histogram) observe(v float64) {
	h.sum += v
	h.count++
	last := len(h.upperBounds) - 1
	for i, b := range h.upperBounds[:last] {
		if v <= b {
			h.counts[i]++
		}
	}
	// NaN compares false against every bound but still lands in +Inf.
	h.counts[last]++
}

func (h *histogram) snapshot() HistogramSnapshot {
	s := HistogramSnapshot{
		Sum:     h.sum,
		Count:   h.count,
		Buckets: make([]Bucket, len(h.upperBounds)),
	}
	for i, b := range h.upperBounds {
		s.Buckets[i] = Bucket{UpperBound: b, CumulativeCount: h.counts[i]}
	}
	return s
}

func (h *histogram) write() *dto.MetricFamily {
	last := len(h.upperBounds) - 1
	buckets := make([]*dto.Bucket, 0, last)
	// The +Inf bucket is implied by SampleCount.
	for i, b := range h.upperBounds[:last] {
		buckets = append(buckets, &dto.Bucket{
			UpperBound:      proto.Float64(b),
			CumulativeCount: proto.Uint64(h.counts[i]),
		})
	}
	return &dto.MetricFamily{
		Name: proto.String(h.d.Name),
		Help: proto.String(h.d.Help),
		Type: dto.MetricType_HISTOGRAM.Enum(),
		Metric: []*dto.Metric{{
			Histogram: &dto.Histogram{
				SampleCount: proto.Uint64(h.count),
				SampleSum:   proto.Float64(h.sum),
				Bucket:      buckets,
			},
		}},
	}
}

// ObserveHistogram records v in the named histogram: the sum grows by v,
// the count by one, and every bucket whose upper bound is at least v is
// incremented.
func (r *Registry) ObserveHistogram(name string, v float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.lookup(name, model.MetricTypeHistogram)
	if err != nil {
		return err
	}
	m.(*histogram).observe(v)
	return nil
}

// Histogram returns a snapshot of the named histogram.
func (r *Registry) Histogram(name string) (HistogramSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.lookup(name, model.MetricTypeHistogram)
	if err != nil {
		return HistogramSnapshot{}, err
	}
	return m.(*histogram).snapshot(), nil
}
