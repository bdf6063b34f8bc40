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
	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/proto"

	"github.com/autotuner/metrics-exporter/model"
)

type gauge struct {
	d     Desc
	value float64
}

func newGauge(d Desc) *gauge { return &gauge{d: d} }

func (g *gauge) desc() *Desc { return &g.d }

func (g *gauge) write() *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(g.d.Name),
		Help: proto.String(g.d.Help),
		Type: dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{{
			Gauge: &dto.Gauge{Value: proto.Float64(g.value)},
		}},
	}
}

// SetGauge overwrites the value of the named gauge.
func (r *Registry) SetGauge(name string, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.lookup(name, model.MetricTypeGauge)
	if err != nil {
		return err
	}
	m.(*gauge).value = value
	return nil
}

// AddGauge adds delta, which may be negative, to the named gauge.
func (r *Registry) AddGauge(name string, delta float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.lookup(name, model.MetricTypeGauge)
	if err != nil {
		return err
	}
	m.(*gauge).value += delta
	return nil
}

// GaugeValue returns the current value of the named gauge.
func (r *Registry) GaugeValue(name string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.lookup(name, model.MetricTypeGauge)
	if err != nil {
		return 0, err
	}
	return m.(*gauge).value, nil
}
