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
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/xeonx/timeago"

	"github.com/quantvault/growthlens/data"
)

// Markdown builds the per-ticker console summary as a markdown document.
func Markdown(result *data.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", result.Ticker))
	sb.WriteString(fmt.Sprintf("Analysis period: %s to %s\n\n",
		result.StartPeriod.Format("2006-01-02"), result.EndPeriod.Format("2006-01-02")))

	if !result.SourceModTime.IsZero() {
		sb.WriteString(fmt.Sprintf("Data updated: %s (%s)\n\n",
			timeago.English.Format(result.SourceModTime), result.SourceModTime.Local().Format("01/02/2006")))
	}

	sb.WriteString("## Growth\n\n")
	sb.WriteString("| Metric | Start | End | Growth |\n")
	sb.WriteString("| --- | ---: | ---: | ---: |\n")
	writeSeriesRow(&sb, "Revenue", result.Revenue)
	writeSeriesRow(&sb, "Net Income", result.NetIncome)
	writeSeriesRow(&sb, "FCF per Share", result.FreeCashFlow)

	sb.WriteString("\n## Valuation\n\n")
	sb.WriteString(fmt.Sprintf("- PE Ratio: %s\n", FormatRatio(result.PERatio)))
	sb.WriteString(fmt.Sprintf("- PEG Ratio: %s\n", FormatRatio(result.PEGRatio)))
	sb.WriteString(fmt.Sprintf("- Market Cap: %s\n", FormatMoney(result.MarketCap)))
	sb.WriteString(fmt.Sprintf("- Total Debt: %s\n", FormatMoney(result.TotalDebt)))
	sb.WriteString(fmt.Sprintf("- Cash & Equivalents: %s\n", FormatMoney(result.CashAndEquivalents)))
	sb.WriteString(fmt.Sprintf("- Enterprise Value: %s\n", FormatMoney(result.EnterpriseValue)))
	sb.WriteString(fmt.Sprintf("- Gross Profit: %s\n", FormatMoney(result.GrossProfit)))

	return sb.String()
}

// Render renders the per-ticker summary for the terminal.
func Render(result *data.AnalysisResult) (string, error) {
	r, err := glamour.NewTermRenderer(
		// detect background color and pick either the default dark or light theme
		glamour.WithAutoStyle(),
		// wrap output at specific width (default is 80)
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}

	return r.Render(Markdown(result))
}

func writeSeriesRow(sb *strings.Builder, name string, series data.MetricSeries) {
	sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
		name, FormatMoney(series.Start), FormatMoney(series.End), FormatPercent(series.Growth)))
}
