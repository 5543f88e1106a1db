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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/quantvault/growthlens/data"
)

// writeFixture builds a minimal four-sheet workbook in dir. The income
// sheet leaves the 2019 net income blank so tests can assert that blank
// cells surface as missing data.
func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()

	f := excelize.NewFile()

	sheets := map[string][][]interface{}{
		"Income-Annual": {
			{"Fiscal Year", "2019-12-31", "2024-12-31"},
			{"Revenue", 100.0, 150.0},
			{"Net Income", nil, 20.0},
			{"Gross Profit", 40.0, 60.0},
		},
		"Balance-Sheet-Annual": {
			{"Fiscal Year", "2019-12-31", "2024-12-31"},
			{"Total Debt", 180.0, 200.0},
			{"Cash & Equivalents", 30.0, 50.0},
		},
		"Cash-Flow-Annual": {
			{"Fiscal Year", "2019-12-31", "2024-12-31"},
			{"Free Cash Flow Per Share", 2.0, 3.0},
		},
		"Ratios-Annual": {
			{"Fiscal Year", "2024-12-31"},
			{"PE Ratio", 50.0},
			{"Market Capitalization", 1000.0},
		},
	}

	first := true
	for sheet, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
			first = false
		} else {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}

		for i, row := range rows {
			for j, cell := range row {
				if cell == nil {
					continue
				}

				ref, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, ref, cell))
			}
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	return path
}

func TestLoad(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "aapl-financials.xlsx")

	set, err := Load(path, DefaultSheetNames())
	require.NoError(t, err)

	start := time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	revenue := set.Income.Value(data.ItemRevenue, start)
	require.True(t, revenue.Valid)
	assert.InDelta(t, 100.0, revenue.Float64, 1e-9)

	// the blank 2019 net income cell must load as missing, not zero
	assert.True(t, set.Income.Value(data.ItemNetIncome, start).IsNA())

	netIncome := set.Income.Value(data.ItemNetIncome, end)
	require.True(t, netIncome.Valid)
	assert.InDelta(t, 20.0, netIncome.Float64, 1e-9)

	fcf := set.CashFlow.Value(data.ItemFCFPerShare, end)
	require.True(t, fcf.Valid)
	assert.InDelta(t, 3.0, fcf.Float64, 1e-9)

	marketCap := set.Ratios.Value(data.ItemMarketCap, end)
	require.True(t, marketCap.Valid)
	assert.InDelta(t, 1000.0, marketCap.Float64, 1e-9)

	// the ratios sheet has no 2019 column at all
	assert.True(t, set.Ratios.Value(data.ItemPERatio, start).IsNA())
}

func TestLoadMissingSheet(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "Income-Annual"))
	require.NoError(t, f.SetCellValue("Income-Annual", "A1", "Fiscal Year"))
	require.NoError(t, f.SetCellValue("Income-Annual", "B1", "2024-12-31"))
	require.NoError(t, f.SetCellValue("Income-Annual", "A2", "Revenue"))
	require.NoError(t, f.SetCellValue("Income-Annual", "B2", 100.0))

	path := filepath.Join(dir, "incomplete-financials.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path, DefaultSheetNames())
	require.ErrorIs(t, err, ErrMissingSheet)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultSheetNames())
	require.Error(t, err)
}

func TestFindTickerFile(t *testing.T) {
	dir := t.TempDir()

	lower := filepath.Join(dir, "aapl-financials.xlsx")
	require.NoError(t, os.WriteFile(lower, []byte("x"), 0o644))

	path, err := FindTickerFile(dir, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, lower, path)

	_, err = FindTickerFile(dir, "MSFT")
	require.ErrorIs(t, err, ErrNoDataFile)
}
