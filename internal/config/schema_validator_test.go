// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/radixroute/internal/radixroute"
)

func TestValidateConfigSchema(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		config string
		assert func(t *testing.T, err error)
	}{
		{
			uc: "valid configuration",
			config: `
log:
  level: info
router:
  cache:
    ttl: 1m30s
    capacity: 100
serve:
  management:
    port: 8080
    buffer_limit: 4KB
providers:
  file_system:
    src: /etc/routes
`,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:     "empty document",
			config: "",
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:     "unknown log format",
			config: "log:\n  format: json",
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
			},
		},
		{
			uc:     "file system provider without src",
			config: "providers:\n  file_system:\n    watch: true",
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
			},
		},
		{
			uc:     "malformed duration",
			config: "router:\n  cache:\n    ttl: soon",
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
			},
		},
		{
			uc:     "not a yaml document",
			config: "log: [",
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
				assert.Contains(t, err.Error(), "failed to parse config")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			err := ValidateConfigSchema(strings.NewReader(tc.config))

			// THEN
			tc.assert(t, err)
		})
	}
}
