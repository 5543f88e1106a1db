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
package analysis

import (
	"fmt"
	"time"

	"github.com/quantvault/growthlens/data"
)

// DefaultStartYears is the preference order scanned for a usable start
// period. Annual filings are inconsistently populated across tickers, so a
// fixed preference order with graceful fallback stays deterministic without
// hard-coding a single year.
var DefaultStartYears = []int{2019, 2020, 2021, 2022}

// DefaultEndYear is the calendar year the end period must fall in.
const DefaultEndYear = 2024

// StartCandidates maps preference-ordered years to their annual period-end
// dates (Dec 31).
func StartCandidates(years []int) []time.Time {
	candidates := make([]time.Time, 0, len(years))
	for _, year := range years {
		candidates = append(candidates, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	}

	return candidates
}

// periodQualifies reports whether the income statement carries Revenue and
// Net Income and the cash-flow statement carries FCF per share at the given
// period. These are the line items every growth metric depends on.
func periodQualifies(set *data.StatementSet, period time.Time) bool {
	if set.Income.Value(data.ItemRevenue, period).IsNA() {
		return false
	}

	if set.Income.Value(data.ItemNetIncome, period).IsNA() {
		return false
	}

	return !set.CashFlow.Value(data.ItemFCFPerShare, period).IsNA()
}

// selectStartPeriod scans the candidates in preference order and returns the
// first period with all required line items present. It never defaults to an
// arbitrary period.
func selectStartPeriod(set *data.StatementSet, candidates []time.Time) (time.Time, error) {
	for _, candidate := range candidates {
		if periodQualifies(set, data.NormalizePeriod(candidate)) {
			return data.NormalizePeriod(candidate), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: no candidate in %s qualifies", ErrNoStartPeriod, formatCandidates(candidates))
}

// selectEndPeriod picks the latest income-statement period falling in the
// target year that has the required line items. Only exact target-year
// matches are eligible; there is no fallback to the latest available period.
func selectEndPeriod(set *data.StatementSet, endYear int) (time.Time, error) {
	var (
		best  time.Time
		found bool
	)

	for _, period := range set.Income.Periods() {
		if period.Year() != endYear {
			continue
		}

		if !periodQualifies(set, period) {
			continue
		}

		if !found || period.After(best) {
			best = period
			found = true
		}
	}

	if !found {
		return time.Time{}, fmt.Errorf("%w: no complete period in year %d", ErrNoEndPeriod, endYear)
	}

	return best, nil
}

func formatCandidates(candidates []time.Time) string {
	out := ""
	for i, c := range candidates {
		if i > 0 {
			out += ", "
		}

		out += c.Format("2006-01-02")
	}

	return "[" + out + "]"
}
