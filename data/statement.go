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
	"sort"
	"time"
)

type StatementKind string

const (
	IncomeStatement StatementKind = "income"
	BalanceSheet    StatementKind = "balance_sheet"
	CashFlow        StatementKind = "cash_flow"
	Ratios          StatementKind = "ratios"
)

// StatementKinds lists the four statements every ticker workbook carries, in
// presentation order.
var StatementKinds = []StatementKind{IncomeStatement, BalanceSheet, CashFlow, Ratios}

// Line-item names as they appear in the source workbooks.
const (
	ItemRevenue      = "Revenue"
	ItemNetIncome    = "Net Income"
	ItemGrossProfit  = "Gross Profit"
	ItemEPSBasic     = "EPS (Basic)"
	ItemFCFPerShare  = "Free Cash Flow Per Share"
	ItemTotalDebt    = "Total Debt"
	ItemCashAndEquiv = "Cash & Equivalents"
	ItemPERatio      = "PE Ratio"
	ItemEPSGrowth    = "EPS Growth"
	ItemMarketCap    = "Market Capitalization"
)

// StatementTable is one financial statement: line items keyed by name, each
// holding values keyed by period-end date. Tables are immutable once built;
// rows and columns are not guaranteed dense or consistently ordered across
// the four statements of a ticker.
type StatementTable struct {
	kind    StatementKind
	items   map[string]map[time.Time]Value
	periods []time.Time
}

// NewStatementTable builds a table from parsed cells. Period keys are
// normalized to UTC midnight so lookups are stable regardless of how the
// source dates were parsed.
func NewStatementTable(kind StatementKind, cells map[string]map[time.Time]Value) *StatementTable {
	items := make(map[string]map[time.Time]Value, len(cells))
	periodSet := make(map[time.Time]struct{})

	for item, row := range cells {
		normalized := make(map[time.Time]Value, len(row))
		for period, value := range row {
			p := NormalizePeriod(period)
			normalized[p] = value
			periodSet[p] = struct{}{}
		}

		items[item] = normalized
	}

	periods := make([]time.Time, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}

	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	return &StatementTable{kind: kind, items: items, periods: periods}
}

func (t *StatementTable) Kind() StatementKind {
	return t.kind
}

// Value looks up a line item at a period. Absent rows, absent columns, and
// blank cells all yield the unavailable marker.
func (t *StatementTable) Value(item string, period time.Time) Value {
	row, ok := t.items[item]
	if !ok {
		return NA()
	}

	return row[NormalizePeriod(period)]
}

// Periods returns every period-end date present in the table, ascending.
func (t *StatementTable) Periods() []time.Time {
	out := make([]time.Time, len(t.periods))
	copy(out, t.periods)

	return out
}

// HasItem reports whether the table carries the named line item at all.
func (t *StatementTable) HasItem(item string) bool {
	_, ok := t.items[item]
	return ok
}

func (t *StatementTable) Len() int {
	return len(t.items)
}

// NormalizePeriod truncates a period-end date to UTC midnight.
func NormalizePeriod(p time.Time) time.Time {
	return time.Date(p.Year(), p.Month(), p.Day(), 0, 0, 0, 0, time.UTC)
}

// StatementSet groups the four statement tables of one ticker. A nil entry
// means the sheet was absent from the source workbook.
type StatementSet struct {
	Income       *StatementTable
	BalanceSheet *StatementTable
	CashFlow     *StatementTable
	Ratios       *StatementTable
}

// Table returns the table for a statement kind, or nil when it was not
// loaded.
func (s *StatementSet) Table(kind StatementKind) *StatementTable {
	switch kind {
	case IncomeStatement:
		return s.Income
	case BalanceSheet:
		return s.BalanceSheet
	case CashFlow:
		return s.CashFlow
	case Ratios:
		return s.Ratios
	}

	return nil
}

// SetTable stores a table under its statement kind.
func (s *StatementSet) SetTable(kind StatementKind, table *StatementTable) {
	switch kind {
	case IncomeStatement:
		s.Income = table
	case BalanceSheet:
		s.BalanceSheet = table
	case CashFlow:
		s.CashFlow = table
	case Ratios:
		s.Ratios = table
	}
}
