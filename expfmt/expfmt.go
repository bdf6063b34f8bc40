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

// Package expfmt contains tools for reading and writing Prometheus metrics
// in their exposition formats.
package expfmt

import (
	"mime"
)

// Format specifies the HTTP content type of the different wire protocols.
type Format string

// Constants to assemble the Content-Type values for the different wire
// protocols.
const (
	TextVersion   = "0.0.4"
	ProtoType     = `application`
	ProtoSubType  = `vnd.google.protobuf`
	ProtoProtocol = `io.prometheus.client.MetricFamily`
	ProtoFmt      = ProtoType + "/" + ProtoSubType + "; proto=" + ProtoProtocol + ";"
	HTMLType      = `text/html`

	FmtUnknown      Format = `<unknown>`
	FmtText         Format = `text/plain; version=` + TextVersion + `; charset=utf-8`
	FmtProtoDelim   Format = ProtoFmt + ` encoding=delimited`
	FmtProtoText    Format = ProtoFmt + ` encoding=text`
	FmtProtoCompact Format = ProtoFmt + ` encoding=compact-text`
	FmtHTML         Format = HTMLType + `; charset=utf-8`
)

const (
	hdrContentType = "Content-Type"
	hdrAccept      = "Accept"
)

// FormatType is a Go enum representing the overall category for the given
// Format.
type FormatType int

const (
	TypeUnknown FormatType = iota
	TypeProtoCompact
	TypeProtoDelim
	TypeProtoText
	TypeTextPlain
	TypeHTML
)

// FormatType deduces an overall FormatType for the given format.
func (f Format) FormatType() FormatType {
	mediatype, params, err := mime.ParseMediaType(string(f))
	if err != nil {
		return TypeUnknown
	}

	switch mediatype {
	case ProtoType + "/" + ProtoSubType:
		if params["proto"] != ProtoProtocol {
			return TypeUnknown
		}
		switch params["encoding"] {
		case "delimited":
			return TypeProtoDelim
		case "text":
			return TypeProtoText
		case "compact-text":
			return TypeProtoCompact
		default:
			return TypeUnknown
		}
	case "text/plain":
		if v, ok := params["version"]; ok && v != TextVersion {
			return TypeUnknown
		}
		return TypeTextPlain
	case HTMLType:
		return TypeHTML
	default:
		return TypeUnknown
	}
}

// ParseFormatName maps the short names used on the command line to a
// Format.
func ParseFormatName(name string) Format {
	switch name {
	case "text":
		return FmtText
	case "protobuf-delimited":
		return FmtProtoDelim
	case "protobuf-text":
		return FmtProtoText
	case "protobuf-compact":
		return FmtProtoCompact
	case "html":
		return FmtHTML
	default:
		return FmtUnknown
	}
}
