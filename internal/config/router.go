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

import "time"

type RouterConfig struct {
	StrictTrailingSlash bool        `koanf:"strict_trailing_slash"`
	Cache               CacheConfig `koanf:"cache"`
}

type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	TTL      time.Duration `koanf:"ttl,string"`
	Capacity uint64        `koanf:"capacity"`
}

type ProvidersConfig struct {
	FileSystem *FileSystemProviderConfig `koanf:"file_system,omitempty"`
}

type FileSystemProviderConfig struct {
	Src            string `koanf:"src"              validate:"required"`
	Watch          bool   `koanf:"watch"`
	EnvVarsEnabled bool   `koanf:"env_vars_enabled"`
	// Pattern restricts the files loaded from a src directory to those with matching names.
	Pattern string `koanf:"pattern"`
}
