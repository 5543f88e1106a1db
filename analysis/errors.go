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

import "errors"

var (
	// ErrNoStartPeriod indicates no preference-ordered candidate had the
	// required line items populated.
	ErrNoStartPeriod = errors.New("no usable start period")

	// ErrNoEndPeriod indicates no period in the target year had the
	// required line items populated.
	ErrNoEndPeriod = errors.New("no usable end period")

	// ErrMissingStatement indicates a whole statement table was absent from
	// the loaded set.
	ErrMissingStatement = errors.New("statement table missing")
)
