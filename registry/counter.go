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
	"fmt"
	"math"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/proto"

	"github.com/autotuner/metrics-exporter/model"
)

type counter struct {
	d      Desc
	series []*counterSeries
	// index maps a series key to its position in series.
	index map[string]int
}

type counterSeries struct {
	values []model.LabelValue
	value  float64
}

func newCounter(d Desc) *counter {
	c := &counter{d: d, index: map[string]int{}}
	if len(d.LabelNames) == 0 {
		c.getOrCreate(nil)
	}
	return c
}

func (c *counter) desc() *Desc { return &c.d }

func (c *counter) getOrCreate(values []model.LabelValue) *counterSeries {
	key := seriesKey(values)
	if i, ok := c.index[key]; ok {
		return c.series[i]
	}
	s := &counterSeries{values: values}
	c.index[key] = len(c.series)
	c.series = append(c.series, s)
	return s
}

func (c *counter) write() *dto.MetricFamily {
	mf := &dto.MetricFamily{
		Name:   proto.String(c.d.Name),
		Help:   proto.String(c.d.Help),
		Type:   dto.MetricType_COUNTER.Enum(),
		Metric: make([]*dto.Metric, 0, len(c.series)),
	}
	for _, s := range c.series {
		mf.Metric = append(mf.Metric, &dto.Metric{
			Label:   labelPairs(c.d.LabelNames, s.values),
			Counter: &dto.Counter{Value: proto.Float64(s.value)},
		})
	}
	return mf
}

// IncrementCounter adds delta to the series of the named counter identified
// by labels, creating the series at zero first if needed. A delta of zero
// only creates the series.
func (r *Registry) IncrementCounter(name string, labels model.LabelSet, delta float64) error {
	if delta < 0 || math.IsNaN(delta) {
		return fmt.Errorf("%w: counter %q cannot be increased by %v", ErrInvalidArgument, name, delta)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.lookup(name, model.MetricTypeCounter)
	if err != nil {
		return err
	}
	c := m.(*counter)
	values, err := labels.Project(c.d.LabelNames)
	if err != nil {
		return fmt.Errorf("%w: counter %q: %s", ErrInvalidArgument, name, err)
	}
	c.getOrCreate(values).value += delta
	return nil
}

// Inc increments the series of the named counter by one.
func (r *Registry) Inc(name string, labels model.LabelSet) error {
	return r.IncrementCounter(name, labels, 1)
}

// CounterValue returns the current value of a counter series. A series
// that was never incremented reads as zero.
func (r *Registry) CounterValue(name string, labels model.LabelSet) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.lookup(name, model.MetricTypeCounter)
	if err != nil {
		return 0, err
	}
	c := m.(*counter)
	values, err := labels.Project(c.d.LabelNames)
	if err != nil {
		return 0, fmt.Errorf("%w: counter %q: %s", ErrInvalidArgument, name, err)
	}
	if i, ok := c.index[seriesKey(values)]; ok {
		return c.series[i].value, nil
	}
	return 0, nil
}

func seriesKey(values []model.LabelValue) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(model.SeparatorByte)
		}
		b.WriteString(string(v))
	}
	return b.String()
}

func labelPairs(names model.LabelNames, values []model.LabelValue) []*dto.LabelPair {
	if len(names) == 0 {
		return nil
	}
	pairs := make([]*dto.LabelPair, len(names))
	for i, ln := range names {
		pairs[i] = &dto.LabelPair{
			Name:  proto.String(string(ln)),
			Value: proto.String(string(values[i])),
		}
	}
	return pairs
}
