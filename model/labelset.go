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
	"sort"
	"strings"
)

// A LabelSet is a collection of LabelName and LabelValue pairs identifying
// one series of a metric. Its map form is only used at the API boundary;
// series are stored as value tuples ordered by the metric's label schema.
type LabelSet map[LabelName]LabelValue

// Project returns the values of the label set in the order of names. The
// label set must carry exactly the given names, no more and no fewer.
func (ls LabelSet) Project(names LabelNames) ([]LabelValue, error) {
	if len(ls) != len(names) {
		return nil, fmt.Errorf("expected labels [%s], got %s", names, ls)
	}
	values := make([]LabelValue, len(names))
	for i, ln := range names {
		lv, ok := ls[ln]
		if !ok {
			return nil, fmt.Errorf("missing label %q in %s", ln, ls)
		}
		if !lv.IsValid() {
			return nil, fmt.Errorf("invalid value %q for label %q", lv, ln)
		}
		values[i] = lv
	}
	return values, nil
}

func (ls LabelSet) String() string {
	lstrs := make([]string, 0, len(ls))
	for l, v := range ls {
		lstrs = append(lstrs, fmt.Sprintf("%s=%q", l, v))
	}
	sort.Stable(LabelSorter(lstrs))
	return fmt.Sprintf("{%s}", strings.Join(lstrs, ", "))
}

// LabelSorter sorts rendered label pairs so that numeric runs compare by
// magnitude, e.g. `code="500"` after `code="99"`.
type LabelSorter []string

func (p LabelSorter) Len() int           { return len(p) }
func (p LabelSorter) Less(i, j int) bool { return Less(p[i], p[j]) }
func (p LabelSorter) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func Less(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		p := lengthOfCommonPrefix(a, b)
		if p > 0 {
			a = a[p:]
			b = b[p:]
		}
		if len(a) == 0 {
			return len(b) != 0
		}
		ia := firstNonNumericCharacterIndex(a)
		ib := firstNonNumericCharacterIndex(b)
		switch {
		case ia > 0 && ib > 0:
			trimmedA, lenTrimmedA := removeLeadingZeros(a[:ia])
			trimmedB, lenTrimmedB := removeLeadingZeros(b[:ib])
			// More digits means a bigger number.
			if lenTrimmedA > lenTrimmedB {
				return false
			} else if lenTrimmedA < lenTrimmedB {
				return true
			}
			if trimmedA != trimmedB {
				return trimmedA < trimmedB
			}
			if ia != len(a) && ib != len(b) {
				a = a[ia:]
				b = b[ib:]
				continue
			}
		case ia > 0 && b[0] == '=':
			return false
		case ib > 0 && a[0] == '=':
			return true
		default:
			return a < b
		}
	}
	return a < b
}

func lengthOfCommonPrefix(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}

func firstNonNumericCharacterIndex(s string) int {
	for i, c := range s {
		if c < '0' || c > '9' {
			return i
		}
	}
	return len(s)
}

func removeLeadingZeros(s string) (string, int) {
	if s[0] != '0' {
		return s, len(s)
	}
	index := 0
	for index < len(s) && s[index] == '0' {
		index++
	}
	return s[index:], len(s[index:])
}
