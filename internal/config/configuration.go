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
	"os"

	"github.com/dadrus/radixroute/internal/config/parser"
	"github.com/dadrus/radixroute/internal/validation"
)

const (
	defaultConfigFileName = "radixroute.yaml"
	defaultEnvPrefix      = "RADIXROUTE_"
)

type Configuration struct {
	Log       LoggingConfig   `koanf:"log"`
	Router    RouterConfig    `koanf:"router"`
	Serve     ServeConfig     `koanf:"serve"`
	Providers ProvidersConfig `koanf:"providers"`
}

// NewConfiguration loads the configuration from the given file (or the default file
// in the lookup directories), environment variables with the given prefix and the
// defaults. A config file is validated against the JSON schema first.
func NewConfiguration(envPrefix, configFile string, validator validation.Validator) (*Configuration, error) {
	result := DefaultConfiguration()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(bytesizeDecodeHookFunc),
		parser.WithConfigFile(configFile),
		parser.WithEnvPrefix(envPrefix),
		parser.WithDefaultConfigFilename(defaultConfigFileName),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir("/etc/radixroute"),
		parser.WithConfigValidator(ValidateConfigSchema),
	).Load(&result)
	if err != nil {
		return nil, err
	}

	if err = validator.ValidateStruct(result); err != nil {
		return nil, err
	}

	return &result, nil
}

// EnvPrefix returns prefix if set, the value of RADIXROUTE_ENV_PREFIX otherwise
// and falls back to the default prefix.
func EnvPrefix(prefix string) string {
	if len(prefix) != 0 {
		return prefix
	}

	if val, ok := os.LookupEnv("RADIXROUTE_ENV_PREFIX"); ok {
		return val
	}

	return defaultEnvPrefix
}
