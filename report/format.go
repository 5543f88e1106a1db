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

// Package report renders analysis results to console text and to result
// tables for export (xlsx, csv, json).
package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantvault/growthlens/data"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders a currency value like $1,234,567.89, or N/A when the
// value is unavailable.
func FormatMoney(v data.Value) string {
	f, ok := v.Float()
	if !ok {
		return "N/A"
	}

	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}

	return printer.Sprintf("$%.2f", f)
}

// FormatPercent renders a growth rate like 12.34%, or N/A when unavailable.
func FormatPercent(v data.Value) string {
	f, ok := v.Float()
	if !ok {
		return "N/A"
	}

	return fmt.Sprintf("%.2f%%", f)
}

// FormatRatio renders a dimensionless ratio with two decimals, or N/A.
func FormatRatio(v data.Value) string {
	f, ok := v.Float()
	if !ok {
		return "N/A"
	}

	return fmt.Sprintf("%.2f", f)
}
