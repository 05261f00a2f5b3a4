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

package slicex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		src      []string
		expected []string
	}{
		{uc: "nil slice"},
		{uc: "nothing matches", src: []string{"a", "b"}},
		{uc: "order is kept", src: []string{"/x", "a", "/y", "/z"}, expected: []string{"/x", "/y", "/z"}},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			res := Filter(tc.src, func(s string) bool { return strings.HasPrefix(s, "/") })

			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	type entry struct {
		key string
		val int
	}

	// WHEN
	idx := Index([]entry{{"a", 1}, {"b", 2}, {"a", 3}}, func(e entry) string { return e.key })

	// THEN
	assert.Len(t, idx, 2)
	assert.Equal(t, 3, idx["a"].val)
	assert.Equal(t, 2, idx["b"].val)
}
