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
	"math"
	"strings"
	"sync"

	dto "github.com/prometheus/client_model/go"

	"github.com/autotuner/metrics-exporter/model"
)

// enhancedWriter has all the enhanced write functions needed here. bufio.Writer
// implements it.
type enhancedWriter interface {
	io.Writer
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
	WriteByte(c byte) error
}

const (
	initialNumBufSize = 24
)

var (
	bufPool = sync.Pool{
		New: func() interface{} {
			return bufio.NewWriter(io.Discard)
		},
	}
	numBufPool = sync.Pool{
		New: func() interface{} {
			b := make([]byte, 0, initialNumBufSize)
			return &b
		},
	}
)

// MetricFamilyToText converts a MetricFamily proto message into text format and
// writes the resulting lines to 'out'. It returns the number of bytes written
// and any error encountered. The output will have the same order as the input,
// no further sorting is performed. Metric and label names are not validated.
//
// A family without metrics is written as its HELP and TYPE lines only.
// Histograms get an explicit "+Inf" bucket if the input does not carry one.
// Only counters, gauges and histograms are supported.
func MetricFamilyToText(out io.Writer, in *dto.MetricFamily) (written int, err error) {
	name := in.GetName()
	if name == "" {
		return 0, fmt.Errorf("MetricFamily has no name: %s", in)
	}
	var typ string
	switch in.GetType() {
	case dto.MetricType_COUNTER:
		typ = "counter"
	case dto.MetricType_GAUGE:
		typ = "gauge"
	case dto.MetricType_HISTOGRAM:
		typ = "histogram"
	default:
		return 0, fmt.Errorf("unsupported metric type %s", in.GetType())
	}

	// Try the interface upgrade. If it doesn't work, we'll use a
	// bufio.Writer from the sync.Pool.
	w, ok := out.(enhancedWriter)
	if !ok {
		b := bufPool.Get().(*bufio.Writer)
		b.Reset(out)
		w = b
		defer func() {
			bErr := b.Flush()
			if err == nil {
				err = bErr
			}
			bufPool.Put(b)
		}()
	}

	var n int
	if in.Help != nil {
		n, err = writeComment(w, "HELP", name, func() (int, error) {
			return writeEscapedString(w, in.GetHelp(), false)
		})
		written += n
		if err != nil {
			return
		}
	}
	n, err = writeComment(w, "TYPE", name, func() (int, error) {
		return w.WriteString(typ)
	})
	written += n
	if err != nil {
		return
	}

	for _, metric := range in.Metric {
		switch in.GetType() {
		case dto.MetricType_COUNTER:
			if metric.Counter == nil {
				return written, fmt.Errorf("expected counter in metric %s %s", name, metric)
			}
			n, err = writeSample(w, name, "", metric, false, 0, metric.Counter.GetValue())
		case dto.MetricType_GAUGE:
			if metric.Gauge == nil {
				return written, fmt.Errorf("expected gauge in metric %s %s", name, metric)
			}
			n, err = writeSample(w, name, "", metric, false, 0, metric.Gauge.GetValue())
		case dto.MetricType_HISTOGRAM:
			if metric.Histogram == nil {
				return written, fmt.Errorf("expected histogram in metric %s %s", name, metric)
			}
			n, err = writeHistogram(w, name, metric)
		}
		written += n
		if err != nil {
			return
		}
	}
	return
}

// writeComment writes "# <kind> <name> " followed by whatever text writes
// and a newline.
func writeComment(w enhancedWriter, kind, name string, text func() (int, error)) (int, error) {
	written := 0
	for _, s := range []string{"# ", kind, " ", name, " "} {
		n, err := w.WriteString(s)
		written += n
		if err != nil {
			return written, err
		}
	}
	n, err := text()
	written += n
	if err != nil {
		return written, err
	}
	err = w.WriteByte('\n')
	written++
	return written, err
}

// writeHistogram writes the cumulative buckets in input order, then _sum and
// _count.
func writeHistogram(w enhancedWriter, name string, metric *dto.Metric) (int, error) {
	h := metric.Histogram
	written := 0
	infSeen := false
	for _, b := range h.Bucket {
		n, err := writeSample(w, name, "_bucket", metric, true, b.GetUpperBound(), float64(b.GetCumulativeCount()))
		written += n
		if err != nil {
			return written, err
		}
		if math.IsInf(b.GetUpperBound(), +1) {
			infSeen = true
		}
	}
	if !infSeen {
		n, err := writeSample(w, name, "_bucket", metric, true, math.Inf(+1), float64(h.GetSampleCount()))
		written += n
		if err != nil {
			return written, err
		}
	}
	n, err := writeSample(w, name, "_sum", metric, false, 0, h.GetSampleSum())
	written += n
	if err != nil {
		return written, err
	}
	n, err = writeSample(w, name, "_count", metric, false, 0, float64(h.GetSampleCount()))
	return written + n, err
}

// writeSample writes one line: the metric name with suffix, the label pairs
// of metric plus an "le" label if withBound is set, and the value.
func writeSample(
	w enhancedWriter,
	name, suffix string,
	metric *dto.Metric,
	withBound bool, bound float64,
	value float64,
) (int, error) {
	written := 0
	n, err := w.WriteString(name + suffix)
	written += n
	if err != nil {
		return written, err
	}
	n, err = writeLabelPairs(w, metric.Label, withBound, bound)
	written += n
	if err != nil {
		return written, err
	}
	err = w.WriteByte(' ')
	written++
	if err != nil {
		return written, err
	}
	n, err = writeFloat(w, value)
	written += n
	if err != nil {
		return written, err
	}
	err = w.WriteByte('\n')
	written++
	return written, err
}

// writeLabelPairs writes the label pairs, escaped and enclosed in '{...}'.
// Nothing is written for an empty slice without bound.
func writeLabelPairs(w enhancedWriter, in []*dto.LabelPair, withBound bool, bound float64) (int, error) {
	if len(in) == 0 && !withBound {
		return 0, nil
	}
	var (
		written   int
		separator byte = '{'
	)
	writePair := func(name string, value func() (int, error)) error {
		err := w.WriteByte(separator)
		written++
		if err != nil {
			return err
		}
		separator = ','
		n, err := w.WriteString(name)
		written += n
		if err != nil {
			return err
		}
		n, err = w.WriteString(`="`)
		written += n
		if err != nil {
			return err
		}
		n, err = value()
		written += n
		if err != nil {
			return err
		}
		err = w.WriteByte('"')
		written++
		return err
	}
	for _, lp := range in {
		if err := writePair(lp.GetName(), func() (int, error) {
			return writeEscapedString(w, lp.GetValue(), true)
		}); err != nil {
			return written, err
		}
	}
	if withBound {
		if err := writePair(model.BucketLabel, func() (int, error) {
			return writeFloat(w, bound)
		}); err != nil {
			return written, err
		}
	}
	err := w.WriteByte('}')
	written++
	return written, err
}

var (
	escaper       = strings.NewReplacer("\\", `\\`, "\n", `\n`)
	quotedEscaper = strings.NewReplacer("\\", `\\`, "\n", `\n`, "\"", `\"`)
)

// writeEscapedString replaces '\' by '\\', new line character by '\n', and - if
// includeDoubleQuote is true - '"' by '\"'.
func writeEscapedString(w enhancedWriter, v string, includeDoubleQuote bool) (int, error) {
	if includeDoubleQuote {
		return quotedEscaper.WriteString(w, v)
	}
	return escaper.WriteString(w, v)
}

// writeFloat writes f as formatted by model.SampleValue, using a byte slice
// taken from a sync.Pool to avoid allocations.
func writeFloat(w enhancedWriter, f float64) (int, error) {
	bp := numBufPool.Get().(*[]byte)
	*bp = model.SampleValue(f).Append((*bp)[:0])
	written, err := w.Write(*bp)
	numBufPool.Put(bp)
	return written, err
}
