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

// Filter returns the elements of src apply holds for, keeping their order.
func Filter[T any](src []T, apply func(T) bool) []T {
	var dst []T

	for _, elem := range src {
		if apply(elem) {
			dst = append(dst, elem)
		}
	}

	return dst
}

// Index builds a lookup map from src using key. Later elements win on duplicate keys.
func Index[T any, K comparable](src []T, key func(T) K) map[K]T {
	idx := make(map[K]T, len(src))

	for _, elem := range src {
		idx[key(elem)] = elem
	}

	return idx
}
