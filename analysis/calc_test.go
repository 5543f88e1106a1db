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
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantvault/growthlens/data"
)

func TestGrowthRate(t *testing.T) {
	up := GrowthRate(data.Num(100), data.Num(150))
	require.True(t, up.Valid)
	assert.InDelta(t, 50.0, up.Float64, 1e-9)

	down := GrowthRate(data.Num(100), data.Num(50))
	require.True(t, down.Valid)
	assert.InDelta(t, -50.0, down.Float64, 1e-9)

	// sign is relative to |start| so growth from a loss to a smaller loss
	// is positive
	recovery := GrowthRate(data.Num(-100), data.Num(-50))
	require.True(t, recovery.Valid)
	assert.InDelta(t, 50.0, recovery.Float64, 1e-9)
}

func TestGrowthRateDegenerate(t *testing.T) {
	assert.True(t, GrowthRate(data.Num(0), data.Num(150)).IsNA(), "zero start must not divide")
	assert.True(t, GrowthRate(data.NA(), data.Num(150)).IsNA())
	assert.True(t, GrowthRate(data.Num(100), data.NA()).IsNA())
	assert.True(t, GrowthRate(data.NA(), data.NA()).IsNA())
}

func TestPriceToEarnings(t *testing.T) {
	pe := PriceToEarnings(data.Num(1000), data.Num(100))
	require.True(t, pe.Valid)
	assert.InDelta(t, 10.0, pe.Float64, 1e-9)

	assert.True(t, PriceToEarnings(data.Num(1000), data.Num(-5)).IsNA(), "negative earnings")
	assert.True(t, PriceToEarnings(data.Num(1000), data.Num(0)).IsNA(), "zero earnings")
	assert.True(t, PriceToEarnings(data.NA(), data.Num(100)).IsNA())
	assert.True(t, PriceToEarnings(data.Num(1000), data.NA()).IsNA())
}

func TestPEGRatio(t *testing.T) {
	peg := PEGRatio(data.Num(10), data.Num(20))
	require.True(t, peg.Valid)
	assert.InDelta(t, 0.5, peg.Float64, 1e-9)

	assert.True(t, PEGRatio(data.Num(10), data.Num(-5)).IsNA(), "negative growth")
	assert.True(t, PEGRatio(data.Num(10), data.Num(0)).IsNA(), "zero growth")
	assert.True(t, PEGRatio(data.NA(), data.Num(20)).IsNA())
	assert.True(t, PEGRatio(data.Num(10), data.NA()).IsNA())
}

func TestEnterpriseValue(t *testing.T) {
	ev := EnterpriseValue(data.Num(1000), data.Num(200), data.Num(50))
	require.True(t, ev.Valid)
	assert.InDelta(t, 1150.0, ev.Float64, 1e-9)

	assert.True(t, EnterpriseValue(data.NA(), data.Num(200), data.Num(50)).IsNA())
	assert.True(t, EnterpriseValue(data.Num(1000), data.NA(), data.Num(50)).IsNA())
	assert.True(t, EnterpriseValue(data.Num(1000), data.Num(200), data.NA()).IsNA())

	// zero operands are legitimate values, not missing data
	debtFree := EnterpriseValue(data.Num(1000), data.Num(0), data.Num(0))
	require.True(t, debtFree.Valid)
	assert.InDelta(t, 1000.0, debtFree.Float64, 1e-9)
}
