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
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quantvault/growthlens/data"
)

// Options configures one analysis run.
type Options struct {
	// StartCandidates is the preference-ordered sequence of candidate start
	// periods.
	StartCandidates []time.Time

	// EndYear is the calendar year the end period must fall in.
	EndYear int
}

// DefaultOptions returns the standard analysis window: start candidates for
// 2019-2022 and an end period in 2024.
func DefaultOptions() Options {
	return Options{
		StartCandidates: StartCandidates(DefaultStartYears),
		EndYear:         DefaultEndYear,
	}
}

// Analyze produces the growth/valuation summary for one ticker. It selects
// the analysis window, pulls the required line items, and computes every
// metric, substituting the unavailable marker wherever data is missing or a
// computation is degenerate. Period selection failures and missing statement
// tables abort this ticker only; the function has no side effects beyond the
// returned result.
func Analyze(ticker string, set *data.StatementSet, opts Options) (*data.AnalysisResult, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: no statements loaded for %s", ErrMissingStatement, ticker)
	}

	if missing := missingStatements(set); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingStatement, strings.Join(missing, ", "))
	}

	startPeriod, err := selectStartPeriod(set, opts.StartCandidates)
	if err != nil {
		return nil, err
	}

	endPeriod, err := selectEndPeriod(set, opts.EndYear)
	if err != nil {
		return nil, err
	}

	logger := log.With().Str("Ticker", ticker).Logger()
	logger.Debug().
		Str("StartPeriod", startPeriod.Format("2006-01-02")).
		Str("EndPeriod", endPeriod.Format("2006-01-02")).
		Msg("selected analysis window")

	result := &data.AnalysisResult{
		Ticker:      strings.ToUpper(ticker),
		StartPeriod: startPeriod,
		EndPeriod:   endPeriod,

		Revenue:      metricSeries(set.Income, data.ItemRevenue, startPeriod, endPeriod),
		NetIncome:    metricSeries(set.Income, data.ItemNetIncome, startPeriod, endPeriod),
		FreeCashFlow: metricSeries(set.CashFlow, data.ItemFCFPerShare, startPeriod, endPeriod),

		MarketCap:          set.Ratios.Value(data.ItemMarketCap, endPeriod),
		TotalDebt:          set.BalanceSheet.Value(data.ItemTotalDebt, endPeriod),
		CashAndEquivalents: set.BalanceSheet.Value(data.ItemCashAndEquiv, endPeriod),
		GrossProfit:        set.Income.Value(data.ItemGrossProfit, endPeriod),
	}

	result.PERatio = peRatio(set, result, endPeriod)
	result.PEGRatio = PEGRatio(result.PERatio, earningsGrowth(set, startPeriod, endPeriod))
	result.EnterpriseValue = EnterpriseValue(result.MarketCap, result.TotalDebt, result.CashAndEquivalents)

	return result, nil
}

func missingStatements(set *data.StatementSet) []string {
	var missing []string

	for _, kind := range data.StatementKinds {
		if set.Table(kind) == nil {
			missing = append(missing, string(kind))
		}
	}

	return missing
}

func metricSeries(table *data.StatementTable, item string, start, end time.Time) data.MetricSeries {
	startValue := table.Value(item, start)
	endValue := table.Value(item, end)

	return data.MetricSeries{
		Start:  startValue,
		End:    endValue,
		Growth: GrowthRate(startValue, endValue),
	}
}

// peRatio prefers the P/E published in the ratios table and falls back to
// market cap over end-period net income.
func peRatio(set *data.StatementSet, result *data.AnalysisResult, end time.Time) data.Value {
	if published := set.Ratios.Value(data.ItemPERatio, end); !published.IsNA() {
		return published
	}

	return PriceToEarnings(result.MarketCap, result.NetIncome.End)
}

// earningsGrowth prefers the EPS Growth figure published in the ratios table
// and falls back to the growth of basic EPS over the analysis window. A
// published figure of exactly zero is a placeholder in these exports, not a
// real flat year, and triggers the fallback too.
func earningsGrowth(set *data.StatementSet, start, end time.Time) data.Value {
	published := set.Ratios.Value(data.ItemEPSGrowth, end)
	if f, ok := published.Float(); ok && f != 0 {
		return published
	}

	return GrowthRate(set.Income.Value(data.ItemEPSBasic, start), set.Income.Value(data.ItemEPSBasic, end))
}
