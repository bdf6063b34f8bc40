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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const testSchema = `
metrics:
  - name: http_requests_total
    help: Total number of HTTP requests
    type: counter
    labels: [method, status]
  - name: active_users
    help: Number of active users
    type: gauge
  - name: page_load_time_seconds
    help: Page load time in seconds
    type: histogram
    buckets: [0.5, 1]
`

const testUpdates = `
- {op: counter, name: http_requests_total, labels: {method: GET, status: "200"}, value: 2}
- {op: gauge, name: active_users, value: 3}
- {op: observe, name: page_load_time_seconds, value: 0.8}
- {op: gauge, name: http_requests_total, value: 1}
`

const testExposition = `# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",status="200"} 2
# HELP active_users Number of active users
# TYPE active_users gauge
active_users 3
# HELP page_load_time_seconds Page load time in seconds
# TYPE page_load_time_seconds histogram
page_load_time_seconds_bucket{le="0.5"} 0
page_load_time_seconds_bucket{le="1"} 1
page_load_time_seconds_bucket{le="+Inf"} 1
page_load_time_seconds_sum 0.8
page_load_time_seconds_count 1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func parseArgs(t *testing.T, args ...string) *options {
	t.Helper()
	opts := &options{}
	_, err := newApp(opts).Parse(args)
	require.NoError(t, err)
	return opts
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	opts := parseArgs(t,
		"--config.file", writeFile(t, dir, "metrics.yml", testSchema),
		"--updates.file", writeFile(t, dir, "updates.yml", testUpdates),
	)
	require.Equal(t, "text", opts.outputFormat)

	logger, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run(opts, logger, &out))
	require.Equal(t, testExposition, out.String())

	var warnings int
	for _, e := range hook.AllEntries() {
		if e.Message == "Rejected update" {
			warnings++
			require.Equal(t, 3, e.Data["index"])
		}
	}
	require.Equal(t, 1, warnings)
	require.Equal(t, "Applied updates", hook.LastEntry().Message)
	require.Equal(t, 1, hook.LastEntry().Data["rejected"])
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "out.html")
	opts := parseArgs(t,
		"--config.file", writeFile(t, dir, "metrics.yml", testSchema),
		"--output.format", "html",
		"--output.file", outFile,
	)

	logger, _ := logtest.NewNullLogger()
	var stdout bytes.Buffer
	require.NoError(t, run(opts, logger, &stdout))
	require.Empty(t, stdout.String())

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "<html>")
	require.Contains(t, string(content), "active_users 0")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yml", "metrics: [{name: up}]")

	logger, _ := logtest.NewNullLogger()
	err := run(parseArgs(t, "--config.file", bad), logger, &bytes.Buffer{})
	require.ErrorContains(t, err, `metric "up": type is required`)

	_, err = newApp(&options{}).Parse([]string{"--config.file", bad, "--output.format", "xml"})
	require.Error(t, err)

	_, err = newApp(&options{}).Parse([]string{"--config.file", filepath.Join(dir, "missing.yml")})
	require.Error(t, err)
}
