// Copyright 2022 The Prometheus Authors
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
	"bytes"
	"html/template"
	"io"

	dto "github.com/prometheus/client_model/go"
)

var (
	preamble             = []byte("<html><head><title>Metrics</title></head><body><h1>Metrics</h1>")
	metricFamilyTemplate = template.Must(template.New("metrics-page").Parse(`<pre>{{.}}</pre>`))
	postamble            = []byte("</body></html>")
)

// MetricFamilyToHTML writes the text format of a single MetricFamily,
// HTML-escaped and wrapped in a <pre> block.
func MetricFamilyToHTML(out io.Writer, in *dto.MetricFamily) error {
	buf := &bytes.Buffer{}
	if _, err := MetricFamilyToText(buf, in); err != nil {
		return err
	}
	return metricFamilyTemplate.Execute(out, buf.String())
}

// HTMLPreamble writes the header and general front matter for the HTML
// representation.
func HTMLPreamble(out io.Writer) error {
	_, err := out.Write(preamble)
	return err
}

// HTMLPostamble writes the footer and closing tags for the HTML representation.
// It closes all tags opened in the preamble.
func HTMLPostamble(out io.Writer) error {
	_, err := out.Write(postamble)
	return err
}

// NewHTMLEncoder returns an Encoder writing one <pre> block per family. The
// preamble is written on the first Encode call, or by Close if nothing was
// encoded.
func NewHTMLEncoder(w io.Writer) Encoder {
	started := false
	start := func() error {
		if started {
			return nil
		}
		started = true
		return HTMLPreamble(w)
	}
	return encoderCloser{
		encode: func(v *dto.MetricFamily) error {
			if err := start(); err != nil {
				return err
			}
			return MetricFamilyToHTML(w, v)
		},
		close: func() error {
			if err := start(); err != nil {
				return err
			}
			return HTMLPostamble(w)
		},
	}
}
