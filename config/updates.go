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

package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v2"

	"github.com/autotuner/metrics-exporter/model"
	"github.com/autotuner/metrics-exporter/registry"
)

// Op is the kind of an Update.
type Op string

const (
	// OpCounter adds Value to the counter series selected by Labels.
	OpCounter Op = "counter"
	// OpGauge sets the gauge to Value.
	OpGauge Op = "gauge"
	// OpObserve records Value in a histogram.
	OpObserve Op = "observe"
)

// Update is one registry operation of an update script.
type Update struct {
	Op     Op             `yaml:"op"`
	Name   string         `yaml:"name"`
	Labels model.LabelSet `yaml:"labels,omitempty"`
	Value  float64        `yaml:"value"`
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The value field
// is required for every op.
func (u *Update) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw struct {
		Op     Op             `yaml:"op"`
		Name   string         `yaml:"name"`
		Labels model.LabelSet `yaml:"labels,omitempty"`
		Value  *float64       `yaml:"value"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*u = Update{Op: raw.Op, Name: raw.Name, Labels: raw.Labels}
	switch u.Op {
	case OpCounter:
	case OpGauge, OpObserve:
		if len(u.Labels) > 0 {
			return fmt.Errorf("update of %q: labels are only supported on counter updates", u.Name)
		}
	default:
		return fmt.Errorf("update of %q: unknown op %q", u.Name, u.Op)
	}
	if u.Name == "" {
		return fmt.Errorf("update name is required")
	}
	if raw.Value == nil {
		return fmt.Errorf("update of %q: value is required", u.Name)
	}
	u.Value = *raw.Value
	return nil
}

// LoadUpdates parses a YAML list of updates.
func LoadUpdates(s string) ([]Update, error) {
	var us []Update
	if err := yaml.UnmarshalStrict([]byte(s), &us); err != nil {
		return nil, err
	}
	return us, nil
}

// LoadUpdatesFile parses the given YAML file into a list of updates.
func LoadUpdatesFile(filename string) ([]Update, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	us, err := LoadUpdates(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing YAML file %s: %w", filename, err)
	}
	return us, nil
}

// Apply performs the update on r.
func (u Update) Apply(r *registry.Registry) error {
	switch u.Op {
	case OpCounter:
		return r.IncrementCounter(u.Name, u.Labels, u.Value)
	case OpGauge:
		return r.SetGauge(u.Name, u.Value)
	case OpObserve:
		return r.ObserveHistogram(u.Name, u.Value)
	}
	return fmt.Errorf("%w: unknown op %q", registry.ErrInvalidArgument, u.Op)
}

// ApplyUpdates performs the updates in order. A rejected update is reported
// to onError together with its index and does not stop the remaining ones.
// It returns the number of rejected updates.
func ApplyUpdates(r *registry.Registry, us []Update, onError func(i int, u Update, err error)) int {
	failed := 0
	for i, u := range us {
		if err := u.Apply(r); err != nil {
			failed++
			if onError != nil {
				onError(i, u, err)
			}
		}
	}
	return failed
}
