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
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/gosimple/slug"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantvault/growthlens/analysis"
	"github.com/quantvault/growthlens/data"
	"github.com/quantvault/growthlens/healthcheck"
	"github.com/quantvault/growthlens/loader"
	"github.com/quantvault/growthlens/report"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [ticker...|tickers.txt]",
	Short: "Analyze growth and valuation for one or more tickers",
	Long: `The analyze sub-command loads the financial statement workbook for each
ticker from the data directory, selects the usable analysis window, computes
growth and valuation metrics, prints a summary to the terminal and exports a
result table.

Tickers are processed strictly sequentially; a ticker whose data cannot be
analyzed is reported as a failure and the batch continues with the remaining
tickers.

A single argument ending in .txt is read as a ticker list file, one ticker
per line. With no arguments an interactive prompt asks for tickers.`,
	Run: func(cmd *cobra.Command, args []string) {
		tickers, err := resolveTickers(args)
		if err != nil {
			log.Fatal().Err(err).Msg("could not resolve ticker list")
		}

		if len(tickers) == 0 {
			log.Fatal().Msg("no tickers provided")
		}

		format, err := report.ParseFormat(viper.GetString("format"))
		if err != nil {
			log.Fatal().Err(err).Msg("invalid output format")
		}

		runID, err := healthcheck.Start()
		if err != nil {
			log.Warn().Err(err).Msg("healthcheck start ping failed")
		}

		startTime := time.Now()
		outcomes := runBatch(tickers)
		runTime := time.Since(startTime)

		results := make([]*data.AnalysisResult, 0, len(outcomes))
		for _, outcome := range outcomes {
			if !outcome.Failed() {
				results = append(results, outcome.Result)
			}
		}

		if len(results) > 0 {
			outputPath := resultPath(tickers, format)
			if err := report.Export(outputPath, format, results); err != nil {
				log.Error().Err(err).Str("Path", outputPath).Msg("could not export result table")
			} else {
				log.Info().Str("Path", outputPath).Msg("exported result table")
			}
		}

		printSummary(outcomes)

		log.Info().Str("RunTime", durafmt.Parse(runTime).String()).
			Int("NumTickers", len(tickers)).Int("NumResults", len(results)).
			Str("RunID", runID.String()).
			Msg("analysis run complete")

		if len(results) == 0 {
			if err := healthcheck.Fail(runID); err != nil {
				log.Warn().Err(err).Msg("healthcheck fail ping failed")
			}

			os.Exit(1)
		}

		if err := healthcheck.Success(runID); err != nil {
			log.Warn().Err(err).Msg("healthcheck success ping failed")
		}
	},
}

// runBatch analyzes each ticker in order. Per-ticker failures never abort
// the batch.
func runBatch(tickers []string) []data.TickerOutcome {
	opts := analysisOptions()
	sheetNames := configuredSheetNames()
	dataDir := viper.GetString("dataDir")

	outcomes := make([]data.TickerOutcome, 0, len(tickers))

	for _, ticker := range tickers {
		logger := log.With().Str("Ticker", ticker).Logger()

		result, err := analyzeTicker(ticker, dataDir, sheetNames, opts)
		if err != nil {
			logger.Error().Err(err).Msg("analysis failed")
			outcomes = append(outcomes, data.TickerOutcome{Ticker: ticker, Err: err})

			continue
		}

		rendered, err := report.Render(result)
		if err != nil {
			logger.Warn().Err(err).Msg("could not render summary")
		} else {
			fmt.Print(rendered)
		}

		outcomes = append(outcomes, data.TickerOutcome{Ticker: ticker, Result: result})
	}

	return outcomes
}

func analyzeTicker(ticker, dataDir string, sheetNames map[data.StatementKind]string, opts analysis.Options) (*data.AnalysisResult, error) {
	path, err := loader.FindTickerFile(dataDir, ticker)
	if err != nil {
		return nil, err
	}

	log.Info().Str("Ticker", ticker).Str("Path", path).Msg("found data file")

	set, err := loader.Load(path, sheetNames)
	if err != nil {
		return nil, err
	}

	result, err := analysis.Analyze(ticker, set, opts)
	if err != nil {
		return nil, err
	}

	if info, statErr := os.Stat(path); statErr == nil {
		result.SourceModTime = info.ModTime()
	}

	return result, nil
}

func analysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()

	if years := viper.GetIntSlice("startYears"); len(years) > 0 {
		opts.StartCandidates = analysis.StartCandidates(years)
	}

	if endYear := viper.GetInt("endYear"); endYear != 0 {
		opts.EndYear = endYear
	}

	return opts
}

func configuredSheetNames() map[data.StatementKind]string {
	names := loader.DefaultSheetNames()

	for kind := range names {
		if override := viper.GetString("sheets." + string(kind)); override != "" {
			names[kind] = override
		}
	}

	return names
}

// resolveTickers turns command arguments into an upper-cased ticker list:
// explicit tickers, a .txt list file, or an interactive prompt.
func resolveTickers(args []string) ([]string, error) {
	if len(args) == 1 && strings.HasSuffix(args[0], ".txt") {
		return readTickerFile(args[0])
	}

	if len(args) == 0 {
		return promptTickers()
	}

	return normalizeTickers(args), nil
}

func readTickerFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read ticker file %s: %w", path, err)
	}

	tickers := normalizeTickers(strings.Split(string(content), "\n"))

	log.Info().Int("NumTickers", len(tickers)).Str("Path", path).Msg("read ticker list file")

	return tickers, nil
}

func promptTickers() ([]string, error) {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which tickers do you want to analyze?").
				Description("Separate multiple tickers with spaces, e.g. AAPL MSFT").
				Value(&input),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return normalizeTickers(strings.Fields(input)), nil
}

func normalizeTickers(raw []string) []string {
	tickers := make([]string, 0, len(raw))

	for _, t := range raw {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			tickers = append(tickers, t)
		}
	}

	return tickers
}

// resultPath names the artifact after the ticker for single runs and uses
// the batch name otherwise.
func resultPath(tickers []string, format report.Format) string {
	name := "stock-analysis." + format.Ext()
	if len(tickers) == 1 {
		name = fmt.Sprintf("%s-result.%s", slug.Make(tickers[0]), format.Ext())
	}

	return filepath.Join(viper.GetString("outputDir"), name)
}

func printSummary(outcomes []data.TickerOutcome) {
	var succeeded, failed []string

	for _, outcome := range outcomes {
		if outcome.Failed() {
			failed = append(failed, outcome.Ticker)
		} else {
			succeeded = append(succeeded, outcome.Ticker)
		}
	}

	fmt.Println()

	if len(succeeded) > 0 {
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ analyzed %d: %s", len(succeeded), strings.Join(succeeded, ", "))))
	}

	if len(failed) > 0 {
		fmt.Println(failureStyle.Render(fmt.Sprintf("✗ failed %d: %s", len(failed), strings.Join(failed, ", "))))
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("format", "xlsx", "result table format (xlsx, csv, or json)")
	if err := viper.BindPFlag("format", analyzeCmd.Flags().Lookup("format")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for format failed")
	}

	viper.SetDefault("endYear", analysis.DefaultEndYear)
}
