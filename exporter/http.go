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
	"bytes"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/autotuner/metrics-exporter/expfmt"
	"github.com/autotuner/metrics-exporter/registry"
)

// HandlerOpts specifies options how to serve metrics via an http.Handler.
type HandlerOpts struct {
	// ErrorLog receives encoding errors. If nil, errors are not logged.
	ErrorLog logrus.FieldLogger
	// If true, the Accept header of the request selects the exposition
	// format, including HTML for browsers. Otherwise the text format is
	// always served.
	EnableNegotiation bool
}

// Handler returns an http.Handler for the given registry, to be mounted by an
// HTTP server on its scrape path. Each request renders a fresh snapshot.
func Handler(r *registry.Registry, opts HandlerOpts) http.Handler {
	return http.HandlerFunc(func(rsp http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			rsp.Header().Set("Allow", "GET, HEAD")
			http.Error(rsp, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		format := expfmt.FmtText
		if opts.EnableNegotiation {
			format = expfmt.NegotiateIncludingHTML(req.Header)
		}

		var buf bytes.Buffer
		if err := WriteFormat(&buf, r, format); err != nil {
			if opts.ErrorLog != nil {
				opts.ErrorLog.WithError(err).WithField("format", string(format)).Error("Error encoding metrics")
			}
			http.Error(rsp, "An error has occurred while serving metrics:\n\n"+err.Error(), http.StatusInternalServerError)
			return
		}

		rsp.Header().Set("Content-Type", string(format))
		if req.Method == http.MethodHead {
			return
		}
		if _, err := rsp.Write(buf.Bytes()); err != nil && opts.ErrorLog != nil {
			opts.ErrorLog.WithError(err).Warn("Error writing metrics response")
		}
	})
}
