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

// Package healthcheck signals batch runs to healthchecks.io so scheduled
// analysis jobs can be monitored. All pings are no-ops unless a ping key is
// configured.
package healthcheck

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

var (
	ErrStatus = errors.New("status code is invalid")
)

// Enabled reports whether healthcheck pings are configured.
func Enabled() bool {
	return viper.GetString("healthchecks.pingKey") != "" && viper.GetString("healthchecks.slug") != ""
}

// Start signals the beginning of a run and returns the run ID attached to
// every subsequent ping of the same run.
func Start() (uuid.UUID, error) {
	runID := uuid.New()
	return runID, ping("/start", runID)
}

// Success signals a completed run.
func Success(runID uuid.UUID) error {
	return ping("", runID)
}

// Fail signals a failed run.
func Fail(runID uuid.UUID) error {
	return ping("/fail", runID)
}

func ping(suffix string, runID uuid.UUID) error {
	if !Enabled() {
		return nil
	}

	url := fmt.Sprintf("https://hc-ping.com/%s/%s%s",
		viper.GetString("healthchecks.pingKey"), viper.GetString("healthchecks.slug"), suffix)

	client := resty.New()
	resp, err := client.R().
		SetQueryParam("rid", runID.String()).
		Get(url)

	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}
