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

package routes

import "time"

type options struct {
	strictTrailingSlash bool
	cacheTTL            time.Duration
	cacheCapacity       uint64
}

type Option func(o *options)

func WithStrictTrailingSlash(strict bool) Option {
	return func(o *options) {
		o.strictTrailingSlash = strict
	}
}

// WithResolutionCache enables caching of resolved routes. A zero ttl leaves the
// cache disabled, a zero capacity makes it unbounded.
func WithResolutionCache(ttl time.Duration, capacity uint64) Option {
	return func(o *options) {
		o.cacheTTL = ttl
		o.cacheCapacity = capacity
	}
}
