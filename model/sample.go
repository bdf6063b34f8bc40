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
	"math"
	"strconv"
)

// A SampleValue is the numeric value of one exposed series.
type SampleValue float64

// String renders the value in plain decimal notation, never with an
// exponent. Infinities and NaN use the exposition spellings.
func (v SampleValue) String() string {
	return string(v.Append(nil))
}

// Append appends the String form of v to b.
func (v SampleValue) Append(b []byte) []byte {
	f := float64(v)
	switch {
	case f == 0:
		return append(b, '0')
	case f == 1:
		return append(b, '1')
	case math.IsNaN(f):
		return append(b, "NaN"...)
	case math.IsInf(f, +1):
		return append(b, "+Inf"...)
	case math.IsInf(f, -1):
		return append(b, "-Inf"...)
	}
	return strconv.AppendFloat(b, f, 'f', -1, 64)
}
