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

import "time"

// MetricSeries holds one line item observed at the start and end of the
// analysis window together with its growth over the window, in percent.
type MetricSeries struct {
	Start  Value `json:"start"`
	End    Value `json:"end"`
	Growth Value `json:"growth_pct"`
}

// AnalysisResult is the growth/valuation summary for one ticker. It is
// assembled once per run and not mutated afterwards; every metric is either
// a valid number or the unavailable marker.
type AnalysisResult struct {
	Ticker      string    `json:"ticker"`
	StartPeriod time.Time `json:"start_period"`
	EndPeriod   time.Time `json:"end_period"`

	// SourceModTime is when the source workbook was last modified, zero
	// when unknown.
	SourceModTime time.Time `json:"-"`

	Revenue      MetricSeries `json:"revenue"`
	NetIncome    MetricSeries `json:"net_income"`
	FreeCashFlow MetricSeries `json:"free_cash_flow_per_share"`

	PERatio            Value `json:"pe_ratio"`
	PEGRatio           Value `json:"peg_ratio"`
	MarketCap          Value `json:"market_cap"`
	TotalDebt          Value `json:"total_debt"`
	CashAndEquivalents Value `json:"cash_and_equivalents"`
	EnterpriseValue    Value `json:"enterprise_value"`
	GrossProfit        Value `json:"gross_profit"`
}

// TickerOutcome is the per-ticker result-or-error union collected by batch
// runs. Exactly one of Result and Err is set.
type TickerOutcome struct {
	Ticker string
	Result *AnalysisResult
	Err    error
}

// Failed reports whether the ticker's analysis ended in an error.
func (o TickerOutcome) Failed() bool {
	return o.Err != nil
}
