// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
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
package data

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Value is a numeric cell that may be absent. The zero value is the
// unavailable marker; a missing figure is never represented as 0.
type Value struct {
	Float64 float64
	Valid   bool
}

// Num returns a valid Value. NaN and infinities are normalized to the
// unavailable marker so they never leak into results.
func Num(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}

	return Value{Float64: v, Valid: true}
}

// NA returns the unavailable marker.
func NA() Value {
	return Value{}
}

// Float returns the numeric value and whether it is present.
func (v Value) Float() (float64, bool) {
	return v.Float64, v.Valid
}

// IsNA reports whether the value is the unavailable marker.
func (v Value) IsNA() bool {
	return !v.Valid
}

func (v Value) String() string {
	if !v.Valid {
		return "N/A"
	}

	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

// MarshalJSON encodes the value as a number, or null when unavailable.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(v.Float64)
}

// UnmarshalJSON decodes a number or null.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	*v = Num(f)

	return nil
}
