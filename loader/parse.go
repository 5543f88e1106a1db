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
	"strconv"
	"strings"
	"time"

	"github.com/quantvault/growthlens/data"
)

// periodLayouts are the date formats seen in workbook header rows. Excelize
// returns formatted cell text, so the same column can surface differently
// depending on the cell style applied by the exporter.
var periodLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
	"01-02-06",
	"Jan 2, 2006",
	"Jan-06",
	"2006",
}

// parsePeriod parses a header cell into a period-end date. A bare year is
// treated as that year's Dec 31 annual period end.
func parsePeriod(cell string) (time.Time, bool) {
	text := strings.TrimSpace(cell)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range periodLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}

		if layout == "2006" {
			return time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC), true
		}

		return data.NormalizePeriod(t), true
	}

	return time.Time{}, false
}

// parseNumber coerces a cell to a float. Currency symbols, thousands
// separators, percent signs, and parenthesized negatives are accepted;
// anything else is missing data, never zero.
func parseNumber(cell string) (float64, bool) {
	text := strings.TrimSpace(cell)
	if text == "" || strings.EqualFold(text, "n/a") || text == "-" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		negative = true
		text = text[1 : len(text)-1]
	}

	text = strings.NewReplacer(",", "", "$", "", "%", "", " ", "").Replace(text)

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}

	if negative {
		v = -v
	}

	return v, true
}
