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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/radixroute/internal/config"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		cors   *config.CORS
		method string
		header map[string]string
		assert func(t *testing.T, resp *http.Response)
	}{
		{
			uc:     "resolves route and sets etag and request id",
			method: http.MethodGet,
			assert: func(t *testing.T, resp *http.Response) {
				t.Helper()

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.NotEmpty(t, resp.Header.Get("Etag"))
				assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
			},
		},
		{
			uc:     "head request",
			method: http.MethodHead,
			assert: func(t *testing.T, resp *http.Response) {
				t.Helper()

				assert.Equal(t, http.StatusOK, resp.StatusCode)
			},
		},
		{
			uc:     "method not allowed",
			method: http.MethodPost,
			assert: func(t *testing.T, resp *http.Response) {
				t.Helper()

				assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
				assert.Equal(t, "GET, HEAD", resp.Header.Get("Allow"))
			},
		},
		{
			uc:     "cors preflight",
			cors:   &config.CORS{AllowedOrigins: []string{"http://foo.local"}, MaxAge: time.Minute},
			method: http.MethodOptions,
			header: map[string]string{
				"Origin":                        "http://foo.local",
				"Access-Control-Request-Method": http.MethodGet,
			},
			assert: func(t *testing.T, resp *http.Response) {
				t.Helper()

				assert.Equal(t, http.StatusNoContent, resp.StatusCode)
				assert.Equal(t, "http://foo.local", resp.Header.Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "60", resp.Header.Get("Access-Control-Max-Age"))
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			conf := &config.Configuration{
				Serve: config.ServeConfig{
					Resolve: config.ServiceConfig{
						Host:    "127.0.0.1",
						Timeout: config.Timeout{Read: time.Second, Write: time.Second, Idle: time.Second},
						CORS:    tc.cors,
					},
				},
			}

			srv := httptest.NewServer(newService(conf, zerolog.Nop(), newTestRepository(t)).Handler)
			defer srv.Close()

			req, err := http.NewRequestWithContext(t.Context(), tc.method, srv.URL+"/users/42", nil)
			require.NoError(t, err)

			for name, value := range tc.header {
				req.Header.Set(name, value)
			}

			// WHEN
			resp, err := srv.Client().Do(req)

			// THEN
			require.NoError(t, err)
			defer resp.Body.Close()

			tc.assert(t, resp)
		})
	}
}
