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

package parser

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/radixroute/internal/radixroute"
)

type testNestedConfig struct {
	SomeString string        `koanf:"some_string"`
	SomeInt    int           `koanf:"someint"`
	SomeBool   bool          `koanf:"somebool"`
	Timeout    time.Duration `koanf:"timeout,string"`
}

type testConfig struct {
	SomeString string           `koanf:"some_string"`
	SomeInt    int              `koanf:"someint"`
	SomeBool   bool             `koanf:"some_bool"`
	SomeList   []string         `koanf:"some_list"`
	Nested     testNestedConfig `koanf:"nested"`
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))

	return fileName
}

func TestConfigLoaderLoad(t *testing.T) {
	// GIVEN
	conf := testConfig{
		SomeString: "default value",
		SomeInt:    666,
		Nested:     testNestedConfig{Timeout: time.Second},
	}

	fileName := writeConfigFile(t, `
some_string: "overridden by yaml file"
someint: 10
nested:
  some_string: ${CONFIGLOADERTEST_FROM_SUBSTITUTION}
  timeout: 1m
`)

	t.Setenv("CONFIGLOADERTEST_FROM_SUBSTITUTION", "substituted")
	t.Setenv("CONFIGLOADERTEST_SOME__BOOL", "true")
	t.Setenv("CONFIGLOADERTEST_SOMEINT", "42")
	t.Setenv("CONFIGLOADERTEST_SOME__LIST", "a,b")
	t.Setenv("CONFIGLOADERTEST_NESTED_SOMEINT", "111")

	var validated bool

	// WHEN
	err := New(
		WithConfigFile(fileName),
		WithEnvPrefix("CONFIGLOADERTEST_"),
		WithConfigValidator(func(src io.Reader) error {
			content, err := io.ReadAll(src)
			require.NoError(t, err)
			assert.Contains(t, string(content), "substituted")

			validated = true

			return nil
		}),
	).Load(&conf)

	// THEN
	require.NoError(t, err)
	assert.True(t, validated)
	assert.Equal(t, "overridden by yaml file", conf.SomeString)
	assert.Equal(t, 42, conf.SomeInt)
	assert.True(t, conf.SomeBool)
	assert.Equal(t, []string{"a", "b"}, conf.SomeList)
	assert.Equal(t, "substituted", conf.Nested.SomeString)
	assert.Equal(t, 111, conf.Nested.SomeInt)
	assert.Equal(t, time.Minute, conf.Nested.Timeout)
}

func TestConfigLoaderLoadWithoutConfigFile(t *testing.T) {
	t.Parallel()

	// GIVEN
	conf := testConfig{SomeString: "default value", Nested: testNestedConfig{Timeout: time.Second}}

	// WHEN
	err := New(WithConfigLookupDir(t.TempDir())).Load(&conf)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "default value", conf.SomeString)
	assert.Equal(t, time.Second, conf.Nested.Timeout)
}

func TestConfigLoaderLoadFromLookupDir(t *testing.T) {
	t.Parallel()

	// GIVEN
	fileName := writeConfigFile(t, "someint: 7")

	var conf testConfig

	// WHEN
	err := New(
		WithConfigLookupDir(t.TempDir()),
		WithConfigLookupDir(filepath.Dir(fileName)),
		WithDefaultConfigFilename(filepath.Base(fileName)),
	).Load(&conf)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 7, conf.SomeInt)
}

func TestConfigLoaderLoadFails(t *testing.T) {
	t.Parallel()

	errValidation := errors.New("validation failed")

	for _, tc := range []struct {
		uc     string
		conf   any
		opts   func(t *testing.T) []Option
		assert func(t *testing.T, err error)
	}{
		{
			uc:   "not existing config file",
			conf: &testConfig{},
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))}
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
				assert.Contains(t, err.Error(), "missing.yaml")
			},
		},
		{
			uc:   "invalid yaml",
			conf: &testConfig{},
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(writeConfigFile(t, "foo: [bar"))}
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
			},
		},
		{
			uc:   "validation error",
			conf: &testConfig{},
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{
					WithConfigFile(writeConfigFile(t, "someint: 1")),
					WithConfigValidator(func(_ io.Reader) error { return errValidation }),
				}
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, errValidation)
			},
		},
		{
			uc: "struct with not lower case keys",
			conf: &struct {
				SomeValue string `koanf:"someValue"`
			}{},
			opts: func(t *testing.T) []Option {
				t.Helper()

				return nil
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
				assert.Contains(t, err.Error(), "someValue")
			},
		},
		{
			uc:   "value not matching the type",
			conf: &testConfig{},
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(writeConfigFile(t, "nested:\n  timeout: foo"))}
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, radixroute.ErrConfiguration)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			err := New(tc.opts(t)...).Load(tc.conf)

			// THEN
			tc.assert(t, err)
		})
	}
}
