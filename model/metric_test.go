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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v2"
)

func TestMetricNameIsValid(t *testing.T) {
	var scenarios = []struct {
		mn    LabelValue
		valid bool
	}{
		{mn: "Avalid_23name", valid: true},
		{mn: "_Avalid_23name", valid: true},
		{mn: "1valid_23name", valid: false},
		{mn: "avalid_23name", valid: true},
		{mn: "Ava:lid_23name", valid: true},
		{mn: "a lid_23name", valid: false},
		{mn: ":leading_colon", valid: true},
		{mn: "colon:in:the:middle", valid: true},
		{mn: "", valid: false},
		{mn: "a\xc5z", valid: false},
	}

	for _, s := range scenarios {
		if IsValidMetricName(s.mn) != s.valid {
			t.Errorf("Expected %v for %q using IsValidMetricName function", s.valid, s.mn)
		}
	}
}

func TestLabelNameIsValid(t *testing.T) {
	var scenarios = []struct {
		ln    LabelName
		valid bool
	}{
		{ln: "Avalid_23name", valid: true},
		{ln: "_Avalid_23name", valid: true},
		{ln: "1valid_23name", valid: false},
		{ln: "avalid_23name", valid: true},
		{ln: "Ava:lid_23name", valid: false},
		{ln: "a lid_23name", valid: false},
		{ln: ":leading_colon", valid: false},
		{ln: "", valid: false},
	}

	for _, s := range scenarios {
		if s.ln.IsValid() != s.valid {
			t.Errorf("Expected %v for %q using IsValid method", s.valid, s.ln)
		}
	}
}

func TestLabelNamesValidate(t *testing.T) {
	require.NoError(t, LabelNames{"method", "status"}.Validate())
	require.EqualError(t, LabelNames{"method", "method"}.Validate(), `duplicate label name "method"`)
	require.EqualError(t, LabelNames{"__name__"}.Validate(), `label name "__name__" is reserved`)
	require.EqualError(t, LabelNames{"9lives"}.Validate(), `invalid label name "9lives"`)
	require.EqualError(t, LabelNames{"le"}.Validate(BucketLabel), `label name "le" is not allowed here`)
}

func TestMetricTypeUnmarshalYAML(t *testing.T) {
	var mt MetricType
	require.NoError(t, yaml.Unmarshal([]byte("histogram"), &mt))
	require.Equal(t, MetricTypeHistogram, mt)

	err := yaml.Unmarshal([]byte("summary"), &mt)
	require.EqualError(t, err, `unknown metric type "summary"`)

	var ln LabelName
	err = yaml.Unmarshal([]byte(`"bad-name"`), &ln)
	require.EqualError(t, err, `"bad-name" is not a valid label name`)
}

func TestSampleValueString(t *testing.T) {
	var scenarios = []struct {
		in  SampleValue
		out string
	}{
		{in: 0, out: "0"},
		{in: 3, out: "3"},
		{in: 2.3, out: "2.3"},
		{in: -1.5, out: "-1.5"},
		{in: 1e6, out: "1000000"},
		{in: 0.00001, out: "0.00001"},
		{in: SampleValue(math.Inf(1)), out: "+Inf"},
		{in: SampleValue(math.Inf(-1)), out: "-Inf"},
		{in: SampleValue(math.NaN()), out: "NaN"},
	}

	for i, s := range scenarios {
		if got := s.in.String(); got != s.out {
			t.Errorf("%d. expected %q, got %q", i, s.out, got)
		}
	}

	b := []byte("v=")
	require.Equal(t, "v=2.5", string(SampleValue(2.5).Append(b)))
}
