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

// Package registry holds named counters, gauges and histograms and the
// update operations on them. A Registry is an explicit value owned by the
// caller; there is no process-wide default instance.
//
// All operations on a Registry are serialized by a single mutex, so one
// Registry may be shared between an updating goroutine and a rendering
// HTTP handler.
package registry

import (
	"errors"
	"fmt"
	"sync"

	dto "github.com/prometheus/client_model/go"

	"github.com/autotuner/metrics-exporter/model"
)

// ErrInvalidArgument is wrapped by every error returned from a Registry.
// A failed call leaves the registry unchanged.
var ErrInvalidArgument = errors.New("invalid argument")

// Desc describes a metric at registration time.
type Desc struct {
	Name string
	Help string
	Type model.MetricType
	// LabelNames is the ordered label schema. Only counters may have one.
	LabelNames model.LabelNames
	// Buckets are the upper bounds of a histogram. +Inf is appended when
	// missing; an empty slice selects DefBuckets.
	Buckets []float64
}

type metric interface {
	desc() *Desc
	write() *dto.MetricFamily
}

// Registry owns a set of metrics in registration order.
type Registry struct {
	mu      sync.Mutex
	metrics []metric
	byName  map[string]metric
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		byName: map[string]metric{},
	}
}

// Register validates d and adds a zero-valued metric for it.
func (r *Registry) Register(d Desc) error {
	m, err := newMetric(d)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[d.Name]; ok {
		return fmt.Errorf("%w: duplicate metric name %q", ErrInvalidArgument, d.Name)
	}
	r.byName[d.Name] = m
	r.metrics = append(r.metrics, m)
	return nil
}

// MustRegister registers all descs and panics on the first error.
func (r *Registry) MustRegister(ds ...Desc) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// NewCounter registers a counter with the given label schema.
func (r *Registry) NewCounter(name, help string, labelNames ...model.LabelName) error {
	return r.Register(Desc{Name: name, Help: help, Type: model.MetricTypeCounter, LabelNames: labelNames})
}

// NewGauge registers a gauge.
func (r *Registry) NewGauge(name, help string) error {
	return r.Register(Desc{Name: name, Help: help, Type: model.MetricTypeGauge})
}

// NewHistogram registers a histogram with fixed bucket upper bounds.
func (r *Registry) NewHistogram(name, help string, buckets []float64) error {
	return r.Register(Desc{Name: name, Help: help, Type: model.MetricTypeHistogram, Buckets: buckets})
}

func newMetric(d Desc) (metric, error) {
	d.LabelNames = append(model.LabelNames(nil), d.LabelNames...)
	if !model.IsValidMetricName(model.LabelValue(d.Name)) {
		return nil, fmt.Errorf("invalid metric name %q", d.Name)
	}
	if d.Type != model.MetricTypeCounter && len(d.LabelNames) > 0 {
		return nil, fmt.Errorf("%s %q: labels are only supported on counters", d.Type, d.Name)
	}
	if d.Type != model.MetricTypeHistogram && len(d.Buckets) > 0 {
		return nil, fmt.Errorf("%s %q: buckets are only supported on histograms", d.Type, d.Name)
	}

	switch d.Type {
	case model.MetricTypeCounter:
		if err := d.LabelNames.Validate(); err != nil {
			return nil, fmt.Errorf("counter %q: %s", d.Name, err)
		}
		return newCounter(d), nil
	case model.MetricTypeGauge:
		return newGauge(d), nil
	case model.MetricTypeHistogram:
		bounds, err := upperBounds(d.Buckets)
		if err != nil {
			return nil, fmt.Errorf("histogram %q: %s", d.Name, err)
		}
		return newHistogram(d, bounds), nil
	default:
		return nil, fmt.Errorf("metric %q: unknown metric type %q", d.Name, d.Type)
	}
}

// lookup returns the metric registered under name if it has type t.
// The caller must hold r.mu.
func (r *Registry) lookup(name string, t model.MetricType) (metric, error) {
	m, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidArgument, name)
	}
	if got := m.desc().Type; got != t {
		return nil, fmt.Errorf("%w: metric %q is a %s, not a %s", ErrInvalidArgument, name, got, t)
	}
	return m, nil
}

// Gather returns a snapshot of all metrics in registration order. A
// labelled counter that was never touched yields a family without metrics.
func (r *Registry) Gather() []*dto.MetricFamily {
	r.mu.Lock()
	defer r.mu.Unlock()

	mfs := make([]*dto.MetricFamily, 0, len(r.metrics))
	for _, m := range r.metrics {
		mfs = append(mfs, m.write())
	}
	return mfs
}

// Names returns the registered metric names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.metrics))
	for _, m := range r.metrics {
		names = append(names, m.desc().Name)
	}
	return names
}

// Describe returns a copy of the Desc registered under name.
func (r *Registry) Describe(name string) (Desc, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byName[name]
	if !ok {
		return Desc{}, false
	}
	d := *m.desc()
	d.LabelNames = append(model.LabelNames(nil), d.LabelNames...)
	d.Buckets = append([]float64(nil), d.Buckets...)
	return d, true
}
