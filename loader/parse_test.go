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
package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		cell string
		want float64
		ok   bool
	}{
		{"1234.5", 1234.5, true},
		{"1,234.50", 1234.5, true},
		{"$1,234.50", 1234.5, true},
		{"(1,234.50)", -1234.5, true},
		{"-42", -42, true},
		{"12.3%", 12.3, true},
		{"0", 0, true},
		{"", 0, false},
		{"-", 0, false},
		{"N/A", 0, false},
		{"n/a", 0, false},
		{"Upgrade", 0, false},
	}

	for _, tc := range cases {
		got, ok := parseNumber(tc.cell)
		assert.Equal(t, tc.ok, ok, "cell %q", tc.cell)

		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-9, "cell %q", tc.cell)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	dec31 := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	got, ok := parsePeriod("2024-12-31")
	require.True(t, ok)
	assert.Equal(t, dec31, got)

	got, ok = parsePeriod("12/31/2024")
	require.True(t, ok)
	assert.Equal(t, dec31, got)

	// a bare year means that year's annual period end
	got, ok = parsePeriod("2024")
	require.True(t, ok)
	assert.Equal(t, dec31, got)

	_, ok = parsePeriod("Fiscal Year")
	assert.False(t, ok)

	_, ok = parsePeriod("")
	assert.False(t, ok)
}
