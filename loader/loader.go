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

// Package loader reads per-ticker financial workbooks into statement
// tables. Workbook sheets carry line items in the first column and
// period-end dates across the header row; every blank or unparsable cell is
// loaded as the unavailable marker, never as zero.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/quantvault/growthlens/data"
)

var (
	// ErrNoDataFile indicates no financial workbook exists for the ticker.
	ErrNoDataFile = errors.New("no financial data file found")

	// ErrMissingSheet indicates a required statement sheet is absent from
	// the workbook.
	ErrMissingSheet = errors.New("statement sheet not found")
)

// DefaultSheetNames maps statement kinds to the sheet names used by the
// workbook exports we ingest.
func DefaultSheetNames() map[data.StatementKind]string {
	return map[data.StatementKind]string{
		data.IncomeStatement: "Income-Annual",
		data.BalanceSheet:    "Balance-Sheet-Annual",
		data.CashFlow:        "Cash-Flow-Annual",
		data.Ratios:          "Ratios-Annual",
	}
}

// FindTickerFile locates the workbook for a ticker inside dataDir. The
// naming convention is <ticker>-financials.xlsx; lowercase, uppercase, and
// as-given spellings are tried in that order.
func FindTickerFile(dataDir, ticker string) (string, error) {
	names := []string{
		fmt.Sprintf("%s-financials.xlsx", strings.ToLower(ticker)),
		fmt.Sprintf("%s-financials.xlsx", strings.ToUpper(ticker)),
		fmt.Sprintf("%s-financials.xlsx", ticker),
	}

	for _, name := range names {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: ticker %s in %s", ErrNoDataFile, ticker, dataDir)
}

// Load reads the four statement sheets from a workbook into a StatementSet.
// A missing sheet is a structural failure for the ticker; the remaining
// sheets are not partially returned.
func Load(path string, sheetNames map[data.StatementKind]string) (*data.StatementSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("Path", path).Msg("could not close workbook")
		}
	}()

	set := &data.StatementSet{}

	for _, kind := range data.StatementKinds {
		sheet, ok := sheetNames[kind]
		if !ok {
			sheet = DefaultSheetNames()[kind]
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (%s) in %s", ErrMissingSheet, sheet, kind, filepath.Base(path))
		}

		table, err := parseSheet(kind, rows)
		if err != nil {
			return nil, fmt.Errorf("sheet %q (%s): %w", sheet, kind, err)
		}

		set.SetTable(kind, table)

		log.Debug().Str("Sheet", sheet).Str("Kind", string(kind)).
			Int("LineItems", table.Len()).Int("Periods", len(table.Periods())).
			Msg("loaded statement sheet")
	}

	return set, nil
}

// parseSheet converts sheet rows into a statement table. The header row maps
// column positions to period-end dates; columns whose header does not parse
// as a date are skipped.
func parseSheet(kind data.StatementKind, rows [][]string) (*data.StatementTable, error) {
	if len(rows) < 2 {
		return nil, errors.New("sheet has no data rows")
	}

	header := rows[0]
	periods := make(map[int]time.Time, len(header))

	for col := 1; col < len(header); col++ {
		if period, ok := parsePeriod(header[col]); ok {
			periods[col] = period
		}
	}

	if len(periods) == 0 {
		return nil, errors.New("header row has no period-end dates")
	}

	cells := make(map[string]map[time.Time]data.Value, len(rows)-1)

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		item := strings.TrimSpace(row[0])
		if item == "" {
			continue
		}

		values := make(map[time.Time]data.Value, len(periods))
		for col, period := range periods {
			if col >= len(row) {
				continue
			}

			if v, ok := parseNumber(row[col]); ok {
				values[period] = data.Num(v)
			}
		}

		cells[item] = values
	}

	return data.NewStatementTable(kind, cells), nil
}
