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

package methodfilter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodFilter(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc            string
		requestMethod string
		filterMethods []string
		nextCalled    bool
		expCode       int
		expAllow      string
	}{
		{
			uc:            "method accepted",
			requestMethod: http.MethodHead,
			filterMethods: []string{http.MethodGet, http.MethodHead},
			nextCalled:    true,
			expCode:       http.StatusOK,
		},
		{
			uc:            "method not allowed",
			requestMethod: http.MethodDelete,
			filterMethods: []string{http.MethodGet, http.MethodHead},
			expCode:       http.StatusMethodNotAllowed,
			expAllow:      "GET, HEAD",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			called := false
			next := http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
				called = true

				rw.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()

			// WHEN
			New(tc.filterMethods...)(next).ServeHTTP(rec,
				httptest.NewRequest(tc.requestMethod, "http://radixroute.local/foo", nil))

			// THEN
			assert.Equal(t, tc.nextCalled, called)
			assert.Equal(t, tc.expCode, rec.Code)
			assert.Equal(t, tc.expAllow, rec.Header().Get("Allow"))
		})
	}
}
