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
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quantvault/growthlens/data"
	"github.com/quantvault/growthlens/loader"
)

// lineItemsByKind documents which line items the analyzer reads from each
// statement sheet.
var lineItemsByKind = map[data.StatementKind][]string{
	data.IncomeStatement: {data.ItemRevenue, data.ItemNetIncome, data.ItemGrossProfit, data.ItemEPSBasic},
	data.BalanceSheet:    {data.ItemTotalDebt, data.ItemCashAndEquiv},
	data.CashFlow:        {data.ItemFCFPerShare},
	data.Ratios:          {data.ItemPERatio, data.ItemEPSGrowth, data.ItemMarketCap},
}

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Describe the workbook layout growthlens expects",
	Run: func(cmd *cobra.Command, args []string) {
		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(80),
		)

		builder := strings.Builder{}
		builder.WriteString("# Workbook Layout\n\n")
		builder.WriteString("Place one workbook per ticker in the data directory, named\n")
		builder.WriteString("`<ticker>-financials.xlsx`. Each sheet carries line items in the\n")
		builder.WriteString("first column and annual period-end dates across the header row.\n")
		builder.WriteString("Blank cells are treated as missing data, never as zero.\n")

		for _, kind := range data.StatementKinds {
			builder.WriteString(fmt.Sprintf("\n## %s\n\n", loader.DefaultSheetNames()[kind]))
			for _, item := range lineItemsByKind[kind] {
				builder.WriteString(fmt.Sprintf("- %s\n", item))
			}
		}

		out, err := r.Render(builder.String())
		if err != nil {
			log.Fatal().Err(err).Msg("could not render layout document")
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
