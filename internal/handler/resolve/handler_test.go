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

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/radixroute/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/radixroute/internal/metadata"
	"github.com/dadrus/radixroute/internal/routes"
)

func newTestRepository(t *testing.T) routes.Repository {
	t.Helper()

	users := metadata.New()
	users.Insert("handler", metadata.String("users.show"))
	users.Insert("weight", metadata.Integer(10))

	health := metadata.New()
	health.Insert("handler", metadata.String("health"))

	repo := routes.NewRepository(zerolog.Nop())
	require.NoError(t, repo.AddRouteSet("test", []routes.Route{
		{Pattern: "/users/:id", Metadata: users},
		{Pattern: "/health", Metadata: health},
	}))

	return repo
}

func TestHandlerServeHTTP(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	for _, tc := range []struct {
		uc     string
		path   string
		accept string
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			uc:   "static route as json",
			path: "/health",
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.JSONEq(t,
					`{"static":true,"metadata":{"handler":"health"},"parameters":{}}`,
					rec.Body.String())
			},
		},
		{
			uc:     "dynamic route as json",
			path:   "/users/42",
			accept: "application/json",
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t,
					`{"static":false,"metadata":{"handler":"users.show","weight":10},"parameters":{"id":"42"}}`,
					rec.Body.String())
			},
		},
		{
			uc:     "dynamic route as yaml",
			path:   "/users/42",
			accept: "application/yaml",
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
				assert.YAMLEq(t, `
static: false
metadata:
  handler: users.show
  weight: 10
parameters:
  id: "42"
`, rec.Body.String())
			},
		},
		{
			uc:   "trailing slash is tolerated",
			path: "/users/42/",
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			uc:   "no route",
			path: "/orders/1",
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.JSONEq(t,
					`{"code":"routeNotFound","message":"no route registered for /orders/1"}`,
					rec.Body.String())
			},
		},
		{
			uc:     "not acceptable",
			path:   "/health",
			accept: "text/html",
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusNotAcceptable, rec.Code)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			handler := newHandler(repo, errorhandler.New(errorhandler.WithVerboseErrors(true)))

			req := httptest.NewRequest(http.MethodGet, "http://radixroute.local"+tc.path, nil)
			if len(tc.accept) != 0 {
				req.Header.Set("Accept", tc.accept)
			}

			rec := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(rec, req)

			// THEN
			tc.assert(t, rec)
		})
	}
}
