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

// Package exporter renders the state of a registry.Registry in the
// Prometheus text exposition format.
//
// Families appear in registration order, series in the order they were first
// written and histogram buckets in ascending order, so rendering an unchanged
// registry twice yields identical output.
package exporter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/autotuner/metrics-exporter/expfmt"
	"github.com/autotuner/metrics-exporter/registry"
)

// ContentType is the HTTP content type of the text exposition format.
const ContentType = string(expfmt.FmtText)

// Render returns the text exposition of r.
func Render(r *registry.Registry) string {
	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		// A registry only hands out named families of supported types,
		// and bytes.Buffer does not fail.
		panic(fmt.Errorf("exporter: rendering registry: %w", err))
	}
	return buf.String()
}

// Write writes the text exposition of r to w.
func Write(w io.Writer, r *registry.Registry) error {
	return WriteFormat(w, r, expfmt.FmtText)
}

// WriteFormat writes the state of r to w in the given format. It panics if
// format is not one of the formats known to expfmt.
func WriteFormat(w io.Writer, r *registry.Registry, format expfmt.Format) error {
	enc := expfmt.NewEncoder(w, format)
	for _, mf := range r.Gather() {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding %q: %w", mf.GetName(), err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}
