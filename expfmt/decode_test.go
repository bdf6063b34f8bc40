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
	"bytes"
	"io"
	"net/http"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestProtoDecoder(t *testing.T) {
	families := []*dto.MetricFamily{
		{
			Name: proto.String("http_requests_total"),
			Type: dto.MetricType_COUNTER.Enum(),
			Metric: []*dto.Metric{
				{
					Label:   []*dto.LabelPair{{Name: proto.String("status"), Value: proto.String("200")}},
					Counter: &dto.Counter{Value: proto.Float64(3)},
				},
			},
		},
		{
			Name:   proto.String("active_users"),
			Type:   dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: proto.Float64(1)}}},
		},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf, FmtProtoDelim)
	for _, mf := range families {
		require.NoError(t, enc.Encode(mf))
	}

	h := http.Header{}
	h.Set(hdrContentType, string(FmtProtoDelim))
	dec, err := NewDecoder(&buf, ResponseFormat(h))
	require.NoError(t, err)

	for _, want := range families {
		var got dto.MetricFamily
		require.NoError(t, dec.Decode(&got))
		require.True(t, proto.Equal(want, &got), "got %v, want %v", &got, want)
	}
	var mf dto.MetricFamily
	require.Equal(t, io.EOF, dec.Decode(&mf))
}

func TestProtoDecoderRejectsInvalidNames(t *testing.T) {
	for _, mf := range []*dto.MetricFamily{
		{Name: proto.String("0up")},
		{
			Name: proto.String("up"),
			Metric: []*dto.Metric{
				{Label: []*dto.LabelPair{{Name: proto.String("job-name"), Value: proto.String("x")}}},
			},
		},
		{
			Name: proto.String("up"),
			Metric: []*dto.Metric{
				{Label: []*dto.LabelPair{{Name: proto.String("job"), Value: proto.String("\xff")}}},
			},
		},
	} {
		var buf bytes.Buffer
		require.NoError(t, NewEncoder(&buf, FmtProtoDelim).Encode(mf))
		dec, err := NewDecoder(&buf, FmtProtoDelim)
		require.NoError(t, err)
		require.Error(t, dec.Decode(&dto.MetricFamily{}))
	}
}

func TestNewDecoderUnsupportedFormat(t *testing.T) {
	for _, f := range []Format{FmtText, FmtProtoText, FmtHTML, FmtUnknown} {
		_, err := NewDecoder(&bytes.Buffer{}, f)
		require.Error(t, err, f)
	}
}
