// Copyright 2013 The Prometheus Authors
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

package model

import (
	"fmt"
)

// MetricType is the kind of a registered metric.
type MetricType string

const (
	MetricTypeCounter   MetricType = "counter"
	MetricTypeGauge     MetricType = "gauge"
	MetricTypeHistogram MetricType = "histogram"
)

// IsValid reports whether t is one of the known metric types.
func (t MetricType) IsValid() bool {
	switch t {
	case MetricTypeCounter, MetricTypeGauge, MetricTypeHistogram:
		return true
	}
	return false
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (t *MetricType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if !MetricType(s).IsValid() {
		return fmt.Errorf("unknown metric type %q", s)
	}
	*t = MetricType(s)
	return nil
}

// IsValidMetricName returns true iff name matches the pattern of
// "^[a-zA-Z_:][a-zA-Z0-9_:]*$".
func IsValidMetricName(n LabelValue) bool {
	if len(n) == 0 {
		return false
	}
	for i, b := range n {
		if !((b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == ':' || (b >= '0' && b <= '9' && i > 0)) {
			return false
		}
	}
	return true
}
