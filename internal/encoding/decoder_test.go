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

package encoding

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/validation"
)

type testDocument struct {
	Name     string         `json:"name"     validate:"required"`
	Interval time.Duration  `json:"interval"`
	Values   map[string]any `json:"values"`
}

func TestDecoderDecode(t *testing.T) {
	validator, err := validation.NewValidator()
	require.NoError(t, err)

	t.Setenv("DECODER_TEST_NAME", "from env")

	for _, tc := range []struct {
		uc     string
		opts   []DecoderOption
		input  string
		assert func(t *testing.T, err error, doc testDocument)
	}{
		{
			uc:    "unsupported content type",
			opts:  []DecoderOption{WithSourceContentType("text/plain")},
			input: "name: foo",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrUnsupportedType)
			},
		},
		{
			uc:    "empty document",
			input: "  \n",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrArgument)
				require.ErrorIs(t, err, io.EOF)
			},
		},
		{
			uc:    "malformed yaml",
			input: "name: [foo",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
				assert.Contains(t, err.Error(), "parsing of document failed")
			},
		},
		{
			uc:    "yaml document",
			input: "name: foo\nvalues:\n  weight: 10\n  auth: true",
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "foo", doc.Name)
				assert.Equal(t, map[string]any{"weight": 10, "auth": true}, doc.Values)
			},
		},
		{
			uc:    "json document keeps numbers exact",
			opts:  []DecoderOption{WithSourceContentType(ContentTypeJSON)},
			input: `{"name": "foo", "values": {"weight": 9007199254740993}}`,
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, json.Number("9007199254740993"), doc.Values["weight"])
			},
		},
		{
			uc:    "env vars substituted",
			opts:  []DecoderOption{WithEnvVarsSubstitution(true)},
			input: "name: ${DECODER_TEST_NAME}",
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "from env", doc.Name)
			},
		},
		{
			uc:    "env vars not substituted",
			input: "name: ${DECODER_TEST_NAME}",
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "${DECODER_TEST_NAME}", doc.Name)
			},
		},
		{
			uc:    "unused keys rejected",
			opts:  []DecoderOption{WithErrorOnUnused(true)},
			input: "name: foo\nfoo: bar",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
				assert.Contains(t, err.Error(), "decoding of document failed")
			},
		},
		{
			uc:    "decode hooks applied",
			opts:  []DecoderOption{WithDecodeHooks(mapstructure.StringToTimeDurationHookFunc())},
			input: "name: foo\ninterval: 1m",
			assert: func(t *testing.T, err error, doc testDocument) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, time.Minute, doc.Interval)
			},
		},
		{
			uc:    "validation failed",
			opts:  []DecoderOption{WithValidator(validator)},
			input: "values:\n  foo: bar",
			assert: func(t *testing.T, err error, _ testDocument) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
				assert.Contains(t, err.Error(), "'name' is a required field")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			dec := NewDecoder[testDocument](tc.opts...)

			// WHEN
			doc, err := dec.Decode(strings.NewReader(tc.input))

			// THEN
			tc.assert(t, err, doc)
		})
	}
}
