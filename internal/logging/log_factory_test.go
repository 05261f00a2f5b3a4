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

package logging

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/radixroute/internal/config"
)

func TestNewTextLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := newLogger(buf, config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.InfoLevel})

	// WHEN
	logger.Info().Str("_src", "foo").Msg("Hello radixroute")
	logger.Debug().Msg("Not logged")

	// THEN
	assert.NotContains(t, buf.String(), "{")
	assert.NotContains(t, buf.String(), "short_message")
	assert.NotContains(t, buf.String(), "Not logged")
	assert.Contains(t, buf.String(), "Hello radixroute")
	assert.Contains(t, buf.String(), "_src=foo")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	file, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)

	t.Cleanup(func() { _ = file.Close() })

	for _, tc := range []struct {
		uc  string
		out io.Writer
	}{
		{uc: "buffer", out: &bytes.Buffer{}},
		{uc: "regular file", out: file},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			assert.False(t, isTerminal(tc.out))
		})
	}
}

func TestNewGelfLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := newLogger(buf, config.LoggingConfig{Format: config.LogGelfFormat, Level: zerolog.DebugLevel})

	// WHEN
	logger.Warn().Msg("Hello radixroute")

	// THEN
	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["_level_name"])
	assert.Equal(t, "1.1", entry["version"])
	assert.NotEmpty(t, entry["host"])
	assert.NotEqual(t, "unknown", entry["host"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "_caller")
	assert.InDelta(t, float64(Warning), entry["level"], 0)
	assert.Equal(t, "Hello radixroute", entry["short_message"])
}
