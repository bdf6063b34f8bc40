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

package exporter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autotuner/metrics-exporter/model"
	"github.com/autotuner/metrics-exporter/registry"
)

// newFrontendRegistry returns a registry seeded with the sample data of the
// frontend dashboard.
func newFrontendRegistry(t testing.TB) *registry.Registry {
	t.Helper()

	r := registry.New()
	r.MustRegister(
		registry.Desc{
			Name:       "http_requests_total",
			Help:       "Total number of HTTP requests by status code",
			Type:       model.MetricTypeCounter,
			LabelNames: model.LabelNames{"status"},
		},
		registry.Desc{
			Name:       "page_views_total",
			Help:       "Total number of page views by route",
			Type:       model.MetricTypeCounter,
			LabelNames: model.LabelNames{"route"},
		},
		registry.Desc{
			Name: "js_errors_total",
			Help: "Total number of JavaScript errors",
			Type: model.MetricTypeCounter,
		},
		registry.Desc{
			Name: "active_users",
			Help: "Current number of active users",
			Type: model.MetricTypeGauge,
		},
		registry.Desc{
			Name:    "page_load_time_seconds",
			Help:    "Page load time in seconds",
			Type:    model.MetricTypeHistogram,
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0},
		},
	)

	for _, s := range []struct {
		status model.LabelValue
		n      float64
	}{{"200", 42}, {"404", 2}, {"500", 0}} {
		require.NoError(t, r.IncrementCounter("http_requests_total", model.LabelSet{"status": s.status}, s.n))
	}
	for _, s := range []struct {
		route model.LabelValue
		n     float64
	}{{"home", 24}, {"about", 8}, {"dashboard", 10}} {
		require.NoError(t, r.IncrementCounter("page_views_total", model.LabelSet{"route": s.route}, s.n))
	}
	require.NoError(t, r.SetGauge("active_users", 3))
	for _, v := range []float64{0.8, 1.2, 0.3} {
		require.NoError(t, r.ObserveHistogram("page_load_time_seconds", v))
	}
	return r
}

const frontendExposition = `# HELP http_requests_total Total number of HTTP requests by status code
# TYPE http_requests_total counter
http_requests_total{status="200"} 42
http_requests_total{status="404"} 2
http_requests_total{status="500"} 0
# HELP page_views_total Total number of page views by route
# TYPE page_views_total counter
page_views_total{route="home"} 24
page_views_total{route="about"} 8
page_views_total{route="dashboard"} 10
# HELP js_errors_total Total number of JavaScript errors
# TYPE js_errors_total counter
js_errors_total 0
# HELP active_users Current number of active users
# TYPE active_users gauge
active_users 3
# HELP page_load_time_seconds Page load time in seconds
# TYPE page_load_time_seconds histogram
page_load_time_seconds_bucket{le="0.1"} 0
page_load_time_seconds_bucket{le="0.5"} 1
page_load_time_seconds_bucket{le="1"} 2
page_load_time_seconds_bucket{le="2"} 3
page_load_time_seconds_bucket{le="5"} 3
page_load_time_seconds_bucket{le="+Inf"} 3
page_load_time_seconds_sum 2.3
page_load_time_seconds_count 3
`
