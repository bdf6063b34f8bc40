// Copyright 2024 The Prometheus Authors
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

package expfmt

import (
	"testing"
)

func TestToFormatType(t *testing.T) {
	tests := []struct {
		format   Format
		expected FormatType
	}{
		{
			format:   FmtProtoCompact,
			expected: TypeProtoCompact,
		},
		{
			format:   FmtProtoDelim,
			expected: TypeProtoDelim,
		},
		{
			format:   FmtProtoText,
			expected: TypeProtoText,
		},
		{
			format:   FmtText,
			expected: TypeTextPlain,
		},
		{
			format:   FmtHTML,
			expected: TypeHTML,
		},
		{
			format:   "application/vnd.google.protobuf; proto=BadProtocol; encoding=text",
			expected: TypeUnknown,
		},
		{
			format:   "application/vnd.google.protobuf",
			expected: TypeUnknown,
		},
		// encoding missing
		{
			format:   "application/vnd.google.protobuf; proto=io.prometheus.client.MetricFamily",
			expected: TypeUnknown,
		},
		// invalid encoding
		{
			format:   "application/vnd.google.protobuf; proto=io.prometheus.client.MetricFamily; encoding=textual",
			expected: TypeUnknown,
		},
		{
			format:   "text/plain",
			expected: TypeTextPlain,
		},
		{
			format:   "text/plain; version=invalid",
			expected: TypeUnknown,
		},
		{
			format:   "gobbledygook",
			expected: TypeUnknown,
		},
	}
	for _, test := range tests {
		if test.format.FormatType() != test.expected {
			t.Errorf("%s: expected %v got %v", test.format, test.expected, test.format.FormatType())
		}
	}
}

func TestParseFormatName(t *testing.T) {
	for name, want := range map[string]Format{
		"text":               FmtText,
		"protobuf-delimited": FmtProtoDelim,
		"protobuf-text":      FmtProtoText,
		"protobuf-compact":   FmtProtoCompact,
		"html":               FmtHTML,
		"openmetrics":        FmtUnknown,
	} {
		if got := ParseFormatName(name); got != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}
