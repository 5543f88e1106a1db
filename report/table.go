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
package report

import "github.com/quantvault/growthlens/data"

// Row is one exported result line. Values are pre-formatted so the xlsx and
// csv artifacts carry the same N/A markers and currency rendering as the
// console output.
type Row struct {
	Ticker             string `csv:"Ticker"`
	StartPeriod        string `csv:"Start Period"`
	EndPeriod          string `csv:"End Period"`
	RevenueStart       string `csv:"Revenue (Start)"`
	RevenueEnd         string `csv:"Revenue (End)"`
	RevenueGrowth      string `csv:"Revenue Growth"`
	IncomeStart        string `csv:"Income (Start)"`
	IncomeEnd          string `csv:"Income (End)"`
	IncomeGrowth       string `csv:"Income Growth"`
	FCFStart           string `csv:"FCF (Start)"`
	FCFEnd             string `csv:"FCF (End)"`
	FCFGrowth          string `csv:"FCF Growth"`
	PERatio            string `csv:"PE Ratio"`
	PEGRatio           string `csv:"PEG Ratio"`
	MarketCap          string `csv:"Market Cap"`
	TotalDebt          string `csv:"Total Debt"`
	CashAndEquivalents string `csv:"Cash & Equivalents"`
	EnterpriseValue    string `csv:"Enterprise Value"`
	GrossProfit        string `csv:"Gross Profit"`
}

// Headers returns the export column headers in order.
func Headers() []string {
	return []string{
		"Ticker", "Start Period", "End Period",
		"Revenue (Start)", "Revenue (End)", "Revenue Growth",
		"Income (Start)", "Income (End)", "Income Growth",
		"FCF (Start)", "FCF (End)", "FCF Growth",
		"PE Ratio", "PEG Ratio", "Market Cap", "Total Debt",
		"Cash & Equivalents", "Enterprise Value", "Gross Profit",
	}
}

// NewRow formats a result into an export row.
func NewRow(result *data.AnalysisResult) Row {
	return Row{
		Ticker:             result.Ticker,
		StartPeriod:        result.StartPeriod.Format("2006-01-02"),
		EndPeriod:          result.EndPeriod.Format("2006-01-02"),
		RevenueStart:       FormatMoney(result.Revenue.Start),
		RevenueEnd:         FormatMoney(result.Revenue.End),
		RevenueGrowth:      FormatPercent(result.Revenue.Growth),
		IncomeStart:        FormatMoney(result.NetIncome.Start),
		IncomeEnd:          FormatMoney(result.NetIncome.End),
		IncomeGrowth:       FormatPercent(result.NetIncome.Growth),
		FCFStart:           FormatMoney(result.FreeCashFlow.Start),
		FCFEnd:             FormatMoney(result.FreeCashFlow.End),
		FCFGrowth:          FormatPercent(result.FreeCashFlow.Growth),
		PERatio:            FormatRatio(result.PERatio),
		PEGRatio:           FormatRatio(result.PEGRatio),
		MarketCap:          FormatMoney(result.MarketCap),
		TotalDebt:          FormatMoney(result.TotalDebt),
		CashAndEquivalents: FormatMoney(result.CashAndEquivalents),
		EnterpriseValue:    FormatMoney(result.EnterpriseValue),
		GrossProfit:        FormatMoney(result.GrossProfit),
	}
}

// Rows formats every result into export rows, preserving order.
func Rows(results []*data.AnalysisResult) []Row {
	rows := make([]Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, NewRow(result))
	}

	return rows
}

func (r Row) values() []string {
	return []string{
		r.Ticker, r.StartPeriod, r.EndPeriod,
		r.RevenueStart, r.RevenueEnd, r.RevenueGrowth,
		r.IncomeStart, r.IncomeEnd, r.IncomeGrowth,
		r.FCFStart, r.FCFEnd, r.FCFGrowth,
		r.PERatio, r.PEGRatio, r.MarketCap, r.TotalDebt,
		r.CashAndEquivalents, r.EnterpriseValue, r.GrossProfit,
	}
}
