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

// Package log builds the logrus logger of the exporter from command line
// flags.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"
)

// LevelFlagHelp is the help text of the --log.level flag.
const LevelFlagHelp = "Only log messages with the given severity or above. One of: [debug, info, warn, error]"

// FormatFlagHelp is the help text of the --log.format flag.
const FormatFlagHelp = "Output format of log messages. One of: [logfmt, json]"

// AllowedLevel is a settable identifier for the minimum level a log entry
// must have.
type AllowedLevel struct {
	s string
	l logrus.Level
}

func (l *AllowedLevel) String() string {
	return l.s
}

// Set updates the value of the allowed level.
func (l *AllowedLevel) Set(s string) error {
	switch s {
	case "debug":
		l.l = logrus.DebugLevel
	case "info":
		l.l = logrus.InfoLevel
	case "warn":
		l.l = logrus.WarnLevel
	case "error":
		l.l = logrus.ErrorLevel
	default:
		return fmt.Errorf("unrecognized log level %q", s)
	}
	l.s = s
	return nil
}

// AllowedFormat is a settable identifier for the output format that the
// logger can have.
type AllowedFormat struct {
	s string
}

func (f *AllowedFormat) String() string {
	return f.s
}

// Set updates the value of the allowed format.
func (f *AllowedFormat) Set(s string) error {
	switch s {
	case "logfmt", "json":
		f.s = s
	default:
		return fmt.Errorf("unrecognized log format %q", s)
	}
	return nil
}

// Config is a struct containing configurable settings for the logger.
type Config struct {
	Level  *AllowedLevel
	Format *AllowedFormat
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// AddFlags adds the flags used by this package to the Kingpin application.
// To use the default Kingpin application, call AddFlags(kingpin.CommandLine, cfg).
func AddFlags(a *kingpin.Application, config *Config) {
	config.Level = &AllowedLevel{}
	a.Flag("log.level", LevelFlagHelp).
		Default("info").SetValue(config.Level)

	config.Format = &AllowedFormat{}
	a.Flag("log.format", FormatFlagHelp).
		Default("logfmt").SetValue(config.Format)
}

// New returns a new logrus.Logger. Each entry carries a timestamp; nil
// settings select info level and logfmt output.
func New(config *Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if config.Writer != nil {
		l.SetOutput(config.Writer)
	}

	if config.Format != nil && config.Format.s == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	l.SetLevel(logrus.InfoLevel)
	if config.Level != nil && config.Level.s != "" {
		l.SetLevel(config.Level.l)
	}
	return l
}
