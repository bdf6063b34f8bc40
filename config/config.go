// Copyright 2016 The Prometheus Authors
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

// Package config loads the metric schema of an exporter from YAML and
// applies it to a registry. Decoding is strict: unknown fields are errors.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v2"

	"github.com/autotuner/metrics-exporter/model"
	"github.com/autotuner/metrics-exporter/registry"
)

// Config is the top-level schema file.
type Config struct {
	Metrics []MetricConfig `yaml:"metrics"`
}

// MetricConfig describes one metric to register.
type MetricConfig struct {
	Name    string           `yaml:"name"`
	Help    string           `yaml:"help,omitempty"`
	Type    model.MetricType `yaml:"type"`
	Labels  model.LabelNames `yaml:"labels,omitempty"`
	Buckets []float64        `yaml:"buckets,omitempty"`
	// InitialSeries are label sets of a counter exposed with value 0 from
	// the start.
	InitialSeries []model.LabelSet `yaml:"initial_series,omitempty"`
}

// Load parses the YAML input s into a Config.
func Load(s string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict([]byte(s), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile parses the given YAML file into a Config.
func LoadFile(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg, err := Load(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing YAML file %s: %w", filename, err)
	}
	return cfg, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Config
	if err := unmarshal((*plain)(c)); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Metrics))
	for _, m := range c.Metrics {
		if _, ok := seen[m.Name]; ok {
			return fmt.Errorf("duplicate metric name %q", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *MetricConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain MetricConfig
	if err := unmarshal((*plain)(c)); err != nil {
		return err
	}
	if c.Name == "" {
		return fmt.Errorf("metric name is required")
	}
	if !model.IsValidMetricName(model.LabelValue(c.Name)) {
		return fmt.Errorf("invalid metric name %q", c.Name)
	}
	if c.Type == "" {
		return fmt.Errorf("metric %q: type is required", c.Name)
	}
	if len(c.InitialSeries) > 0 && c.Type != model.MetricTypeCounter {
		return fmt.Errorf("metric %q: initial_series is only supported on counters", c.Name)
	}
	for _, ls := range c.InitialSeries {
		if _, err := ls.Project(c.Labels); err != nil {
			return fmt.Errorf("metric %q: initial_series: %w", c.Name, err)
		}
	}
	return nil
}

// Desc returns the registration descriptor of the metric.
func (c MetricConfig) Desc() registry.Desc {
	return registry.Desc{
		Name:       c.Name,
		Help:       c.Help,
		Type:       c.Type,
		LabelNames: c.Labels,
		Buckets:    c.Buckets,
	}
}

// Apply registers all metrics in file order and then creates their initial
// series. It stops at the first error, leaving the metrics registered so far
// in place.
func (c *Config) Apply(r *registry.Registry) error {
	for _, m := range c.Metrics {
		if err := r.Register(m.Desc()); err != nil {
			return err
		}
	}
	for _, m := range c.Metrics {
		for _, ls := range m.InitialSeries {
			if err := r.IncrementCounter(m.Name, ls, 0); err != nil {
				return err
			}
		}
	}
	return nil
}
