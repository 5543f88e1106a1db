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

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/quantvault/growthlens/data"
)

func sampleResult() *data.AnalysisResult {
	return &data.AnalysisResult{
		Ticker:      "AAPL",
		StartPeriod: time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC),
		EndPeriod:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		Revenue: data.MetricSeries{
			Start:  data.Num(100),
			End:    data.Num(150),
			Growth: data.Num(50),
		},
		NetIncome: data.MetricSeries{
			Start:  data.Num(10),
			End:    data.Num(20),
			Growth: data.Num(100),
		},
		FreeCashFlow:       data.MetricSeries{}, // entirely unavailable
		PERatio:            data.Num(50),
		PEGRatio:           data.Num(0.5),
		MarketCap:          data.Num(1234567.891),
		TotalDebt:          data.Num(200),
		CashAndEquivalents: data.Num(50),
		EnterpriseValue:    data.Num(1234717.891),
		GrossProfit:        data.NA(),
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234,567.89", FormatMoney(data.Num(1234567.891)))
	assert.Equal(t, "$1,000,000,000.00", FormatMoney(data.Num(1e9)))
	assert.Equal(t, "$0.00", FormatMoney(data.Num(0)))
	assert.Equal(t, "-$1,234.50", FormatMoney(data.Num(-1234.5)))
	assert.Equal(t, "$999.99", FormatMoney(data.Num(999.99)))
	assert.Equal(t, "N/A", FormatMoney(data.NA()))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.00%", FormatPercent(data.Num(50)))
	assert.Equal(t, "-12.34%", FormatPercent(data.Num(-12.34)))
	assert.Equal(t, "N/A", FormatPercent(data.NA()))
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "0.50", FormatRatio(data.Num(0.5)))
	assert.Equal(t, "N/A", FormatRatio(data.NA()))
}

func TestMarkdownCarriesMarkers(t *testing.T) {
	md := Markdown(sampleResult())

	assert.Contains(t, md, "# AAPL")
	assert.Contains(t, md, "2019-12-31 to 2024-12-31")
	assert.Contains(t, md, "50.00%")

	// the unavailable FCF series and gross profit must render as N/A
	assert.Contains(t, md, "| FCF per Share | N/A | N/A | N/A |")
	assert.Contains(t, md, "Gross Profit: N/A")

	// no workbook timestamp, no data-age line
	assert.NotContains(t, md, "Data updated:")
}

func TestMarkdownReportsDataAge(t *testing.T) {
	result := sampleResult()
	result.SourceModTime = time.Now().Add(-72 * time.Hour)

	md := Markdown(result)

	assert.Contains(t, md, "Data updated: 3 days ago")
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aapl-result.xlsx")

	require.NoError(t, Export(path, FormatXLSX, []*data.AnalysisResult{sampleResult()}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	ticker, err := f.GetCellValue(ResultSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", ticker)

	growth, err := f.GetCellValue(ResultSheetName, "F2")
	require.NoError(t, err)
	assert.Equal(t, "50.00%", growth)

	fcfGrowth, err := f.GetCellValue(ResultSheetName, "L2")
	require.NoError(t, err)
	assert.Equal(t, "N/A", fcfGrowth)
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aapl-result.csv")

	require.NoError(t, Export(path, FormatCSV, []*data.AnalysisResult{sampleResult()}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Revenue Growth")
	assert.Contains(t, lines[1], "AAPL")
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aapl-result.json")

	require.NoError(t, Export(path, FormatJSON, []*data.AnalysisResult{sampleResult()}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	// unavailable metrics serialize as null, never zero
	assert.Contains(t, string(content), `"gross_profit": null`)
	assert.Contains(t, string(content), `"ticker": "AAPL"`)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"xlsx", "csv", "json"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, format.Ext())
	}

	_, err := ParseFormat("parquet")
	require.Error(t, err)
}
