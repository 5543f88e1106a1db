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
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/quantvault/growthlens/data"
)

// Format selects the result artifact type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name from flags or config.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatXLSX, FormatCSV, FormatJSON:
		return Format(name), nil
	}

	return "", fmt.Errorf("unknown output format %q (expected xlsx, csv, or json)", name)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Export writes the result table to path in the given format, creating
// parent directories as needed.
func Export(path string, format Format, results []*data.AnalysisResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	switch format {
	case FormatXLSX:
		return exportXLSX(path, results)
	case FormatCSV:
		return exportCSV(path, results)
	case FormatJSON:
		return exportJSON(path, results)
	}

	return fmt.Errorf("unknown output format %q", format)
}

// ResultSheetName is the sheet the xlsx artifact writes rows to.
const ResultSheetName = "Analysis Results"

func exportXLSX(path string, results []*data.AnalysisResult) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Str("Path", path).Msg("could not close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), ResultSheetName); err != nil {
		return err
	}

	for col, header := range Headers() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(ResultSheetName, cell, header); err != nil {
			return err
		}
	}

	for i, row := range Rows(results) {
		for col, value := range row.values() {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(ResultSheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func exportCSV(path string, results []*data.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows := Rows(results)

	return gocsv.MarshalFile(&rows, f)
}

func exportJSON(path string, results []*data.AnalysisResult) error {
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o644)
}
