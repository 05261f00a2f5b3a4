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

package resolve

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		args   []string
		assert func(t *testing.T, err error, out string)
	}{
		{
			uc:   "all paths resolved",
			args: []string{"-r", "testdata/routes.yaml", "/health", "/users/42/", "/files/a/b"},
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)

				lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
				require.Len(t, lines, 3)
				assert.JSONEq(t,
					`{"path":"/health","static":true,"metadata":{"handler":"health"}}`,
					string(lines[0]))
				assert.JSONEq(t,
					`{"path":"/users/42/","static":false,"metadata":{"handler":"users.show","weight":10},"parameters":{"id":"42"}}`,
					string(lines[1]))
				assert.JSONEq(t,
					`{"path":"/files/a/b","static":false,"metadata":{"handler":"files"},"parameters":{"path":"a/b"}}`,
					string(lines[2]))
			},
		},
		{
			uc:   "strict trailing slash",
			args: []string{"-r", "testdata/routes.yaml", "--strict-trailing-slash", "/users/42/"},
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.ErrorIs(t, err, ErrUnresolvedPaths)
				assert.NotContains(t, out, "Usage:")
				assert.JSONEq(t,
					`{"path":"/users/42/","static":false,"error":"no route registered for /users/42/"}`,
					out)
			},
		},
		{
			uc:   "invalid route set",
			args: []string{"-r", "testdata/invalid.yaml", "/health"},
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "testdata/invalid.yaml")
				assert.Empty(t, out)
			},
		},
		{
			uc:   "missing route set file",
			args: []string{"-r", "testdata/missing.yaml", "/health"},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.ErrorIs(t, err, os.ErrNotExist)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := NewResolveCommand()
			out := &bytes.Buffer{}

			cmd.SetOut(out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			// WHEN
			err := cmd.Execute()

			// THEN
			tc.assert(t, err, out.String())
		})
	}
}
