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

// Package analysis implements the growth/valuation engine: period selection
// over sparse annual columns, the metric calculator, and the per-ticker
// analyzer. Every calculator function is total over its inputs and returns
// the unavailable marker on degenerate input instead of panicking or
// producing infinities.
package analysis

import (
	"math"

	"github.com/quantvault/growthlens/data"
)

// GrowthRate computes (end - start) / |start| * 100. The result is
// unavailable when either operand is missing or the start value is zero;
// it is never rendered as 0% or infinity.
func GrowthRate(start, end data.Value) data.Value {
	s, sok := start.Float()
	e, eok := end.Float()

	if !sok || !eok || s == 0 {
		return data.NA()
	}

	return data.Num((e - s) / math.Abs(s) * 100)
}

// PriceToEarnings computes market cap over net income. A P/E on zero or
// negative earnings is not meaningful and yields the unavailable marker.
func PriceToEarnings(marketCap, netIncome data.Value) data.Value {
	mc, mok := marketCap.Float()
	ni, nok := netIncome.Float()

	if !mok || !nok || ni <= 0 {
		return data.NA()
	}

	return data.Num(mc / ni)
}

// PEGRatio computes P/E over earnings growth (in percent). Unavailable when
// the P/E is unavailable or the growth rate is missing or non-positive.
func PEGRatio(pe, growth data.Value) data.Value {
	p, pok := pe.Float()
	g, gok := growth.Float()

	if !pok || !gok || g <= 0 {
		return data.NA()
	}

	return data.Num(p / g)
}

// EnterpriseValue computes market cap + total debt - cash & equivalents,
// unavailable only when an operand is missing.
func EnterpriseValue(marketCap, totalDebt, cash data.Value) data.Value {
	mc, mok := marketCap.Float()
	td, tok := totalDebt.Float()
	c, cok := cash.Float()

	if !mok || !tok || !cok {
		return data.NA()
	}

	return data.Num(mc + td - c)
}
