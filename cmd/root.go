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
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "growthlens",
	Short: "growthlens summarizes multi-year growth and valuation from financial statement workbooks",
	Long: `growthlens is a command line utility that reads per-company financial
statement workbooks (income statement, balance sheet, cash flow, and ratios
sheets) and produces a compact multi-year growth and valuation summary per
ticker.

Annual filings are inconsistently populated across tickers: fiscal calendars
differ, early years are missing, and restated periods leave holes. growthlens
scans a preference-ordered list of candidate start years for the first one
with usable data, anchors the end of the window in a configured target year,
and computes revenue, net income, and free-cash-flow growth alongside P/E,
PEG, and enterprise value. Metrics that cannot be computed are reported as
N/A, never silently as zero.

Results are printed to the terminal and exported as a result table (xlsx,
csv, or json).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.growthlens.toml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory containing <ticker>-financials.xlsx workbooks")
	rootCmd.PersistentFlags().String("output-dir", "output", "directory result artifacts are written to")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	if err := viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for data-dir failed")
	}

	if err := viper.BindPFlag("outputDir", rootCmd.PersistentFlags().Lookup("output-dir")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for output-dir failed")
	}

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for debug failed")
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".growthlens" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".growthlens")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if viper.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
