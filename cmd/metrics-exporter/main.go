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

// Command metrics-exporter builds a registry from a YAML metric schema,
// applies a script of updates to it and writes one exposition of the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"

	"github.com/autotuner/metrics-exporter/config"
	"github.com/autotuner/metrics-exporter/expfmt"
	"github.com/autotuner/metrics-exporter/exporter"
	"github.com/autotuner/metrics-exporter/log"
	"github.com/autotuner/metrics-exporter/model"
	"github.com/autotuner/metrics-exporter/registry"
)

type options struct {
	configFile   string
	updatesFile  string
	outputFormat string
	outputFile   string
	log          log.Config
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("metrics-exporter", "Render metrics in the Prometheus exposition formats.")
	app.HelpFlag.Short('h')

	app.Flag("config.file", "Metric schema file.").
		Required().ExistingFileVar(&opts.configFile)
	app.Flag("updates.file", "YAML list of updates applied after registration.").
		ExistingFileVar(&opts.updatesFile)
	app.Flag("output.format", "Exposition format.").
		Default("text").
		EnumVar(&opts.outputFormat, "text", "html", "protobuf-delimited", "protobuf-text", "protobuf-compact")
	app.Flag("output.file", "File to write the exposition to. Standard output if empty.").
		StringVar(&opts.outputFile)
	log.AddFlags(app, &opts.log)
	return app
}

func main() {
	opts := &options{}
	app := newApp(opts)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := log.New(&opts.log)
	if err := run(opts, logger, os.Stdout); err != nil {
		logger.WithError(err).Error("Exiting")
		os.Exit(1)
	}
}

func run(opts *options, logger logrus.FieldLogger, stdout io.Writer) error {
	format := expfmt.ParseFormatName(opts.outputFormat)
	if format == expfmt.FmtUnknown {
		return fmt.Errorf("unknown output format %q", opts.outputFormat)
	}

	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return err
	}
	r := registry.New()
	if err := cfg.Apply(r); err != nil {
		return fmt.Errorf("applying %s: %w", opts.configFile, err)
	}
	logger.WithField("metrics", len(cfg.Metrics)).Debug("Registered metrics")

	if opts.updatesFile != "" {
		us, err := config.LoadUpdatesFile(opts.updatesFile)
		if err != nil {
			return err
		}
		failed := config.ApplyUpdates(r, us, func(i int, u config.Update, err error) {
			logger.WithError(err).WithFields(logrus.Fields{
				"index":  i,
				"op":     u.Op,
				"metric": u.Name,
				"value":  model.SampleValue(u.Value).String(),
			}).Warn("Rejected update")
		})
		logger.WithFields(logrus.Fields{
			"updates":  len(us),
			"rejected": failed,
		}).Info("Applied updates")
	}

	if opts.outputFile == "" {
		return exporter.WriteFormat(stdout, r, format)
	}
	f, err := os.Create(opts.outputFile)
	if err != nil {
		return err
	}
	if err := exporter.WriteFormat(f, r, format); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", opts.outputFile, err)
	}
	return f.Close()
}
