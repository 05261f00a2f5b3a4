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

package config

import (
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
)

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 2 * time.Minute
	defaultBufferLimit  = 4 * bytesize.KB

	defaultResolvePort    = 4470
	defaultManagementPort = 4471

	defaultCacheTTL      = 1 * time.Minute
	defaultCacheCapacity = 10000
)

func DefaultConfiguration() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Format: LogTextFormat,
			Level:  zerolog.InfoLevel,
		},
		Router: RouterConfig{
			Cache: CacheConfig{
				Enabled:  true,
				TTL:      defaultCacheTTL,
				Capacity: defaultCacheCapacity,
			},
		},
		Serve: ServeConfig{
			Resolve:    defaultServiceConfig(defaultResolvePort),
			Management: defaultServiceConfig(defaultManagementPort),
		},
	}
}

func defaultServiceConfig(port int) ServiceConfig {
	return ServiceConfig{
		Port: port,
		Timeout: Timeout{
			Read:  defaultReadTimeout,
			Write: defaultWriteTimeout,
			Idle:  defaultIdleTimeout,
		},
		BufferLimit: defaultBufferLimit,
	}
}
