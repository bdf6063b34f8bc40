// Copyright 2015 The Prometheus Authors
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
	"bufio"
	"fmt"
	"io"
	"net/http"

	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/encoding/protodelim"

	"github.com/autotuner/metrics-exporter/model"
)

// Decoder types decode an input stream into metric families.
type Decoder interface {
	Decode(*dto.MetricFamily) error
}

// ResponseFormat extracts the exposition format from the Content-Type
// header of a response.
func ResponseFormat(h http.Header) Format {
	return Format(h.Get(hdrContentType))
}

// NewDecoder returns a Decoder reading the given format from r. Only the
// delimited protobuf format can be decoded; the text based formats are
// write-only in this package.
func NewDecoder(r io.Reader, format Format) (Decoder, error) {
	if format.FormatType() != TypeProtoDelim {
		return nil, fmt.Errorf("unsupported format %q for decoding", format)
	}
	return &protoDecoder{r: bufio.NewReader(r)}, nil
}

// protoDecoder implements the Decoder interface for protocol buffers.
type protoDecoder struct {
	r *bufio.Reader
}

// Decode implements the Decoder interface. It returns io.EOF once the
// stream is exhausted.
func (d *protoDecoder) Decode(v *dto.MetricFamily) error {
	opts := protodelim.UnmarshalOptions{MaxSize: -1}
	if err := opts.UnmarshalFrom(d.r, v); err != nil {
		return err
	}
	if !model.IsValidMetricName(model.LabelValue(v.GetName())) {
		return fmt.Errorf("invalid metric name %q", v.GetName())
	}
	for _, m := range v.GetMetric() {
		for _, l := range m.GetLabel() {
			if !model.LabelName(l.GetName()).IsValid() {
				return fmt.Errorf("invalid label name %q", l.GetName())
			}
			if !model.LabelValue(l.GetValue()).IsValid() {
				return fmt.Errorf("invalid value %q for label %q", l.GetValue(), l.GetName())
			}
		}
	}
	return nil
}
