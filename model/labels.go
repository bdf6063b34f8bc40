// Copyright 2013 The Prometheus Authors
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

package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// BucketLabel is used for the label that defines the upper bound of a
	// bucket of a histogram ("le" -> "less or equal").
	BucketLabel = "le"

	// ReservedLabelPrefix is a prefix which is not legal in user-supplied
	// label names.
	ReservedLabelPrefix = "__"
)

// SeparatorByte is a byte that cannot occur in valid UTF-8 sequences and is
// used to separate label values when building series keys.
const SeparatorByte byte = 255

// A LabelName is a key for a LabelSet or Metric. It has a value associated
// therewith.
type LabelName string

// IsValid is true iff the label name matches the pattern of
// "^[a-zA-Z_][a-zA-Z0-9_]*$".
func (ln LabelName) IsValid() bool {
	if len(ln) == 0 {
		return false
	}
	for i, b := range ln {
		if !((b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || (b >= '0' && b <= '9' && i > 0)) {
			return false
		}
	}
	return true
}

// IsReserved reports whether the label name uses the reserved "__" prefix.
func (ln LabelName) IsReserved() bool {
	return strings.HasPrefix(string(ln), ReservedLabelPrefix)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (ln *LabelName) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if !LabelName(s).IsValid() {
		return fmt.Errorf("%q is not a valid label name", s)
	}
	*ln = LabelName(s)
	return nil
}

// LabelNames is an ordered label schema.
type LabelNames []LabelName

func (l LabelNames) String() string {
	labelStrings := make([]string, 0, len(l))
	for _, label := range l {
		labelStrings = append(labelStrings, string(label))
	}
	return strings.Join(labelStrings, ", ")
}

// Validate checks the names for use as the label schema of a metric: each
// name must be valid, not reserved, not repeated and not in forbidden.
func (l LabelNames) Validate(forbidden ...LabelName) error {
	seen := make(map[LabelName]struct{}, len(l))
	for _, ln := range l {
		if !ln.IsValid() {
			return fmt.Errorf("invalid label name %q", ln)
		}
		if ln.IsReserved() {
			return fmt.Errorf("label name %q is reserved", ln)
		}
		for _, f := range forbidden {
			if ln == f {
				return fmt.Errorf("label name %q is not allowed here", ln)
			}
		}
		if _, ok := seen[ln]; ok {
			return fmt.Errorf("duplicate label name %q", ln)
		}
		seen[ln] = struct{}{}
	}
	return nil
}

// A LabelValue is an associated value for a LabelName.
type LabelValue string

// IsValid returns true iff the string is a valid UTF-8.
func (lv LabelValue) IsValid() bool {
	return utf8.ValidString(string(lv))
}
