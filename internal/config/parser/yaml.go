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

package parser

import (
	"github.com/drone/envsubst/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

func substituteEnvVars(configFile string, content []byte) ([]byte, error) {
	expanded, err := envsubst.EvalEnv(string(content))
	if err != nil {
		return nil, errorchain.NewWithMessagef(radixroute.ErrConfiguration,
			"failed to substitute environment variables in %s", configFile).CausedBy(err)
	}

	return []byte(expanded), nil
}

func koanfFromYaml(configFile string, content []byte) (*koanf.Koanf, error) {
	konf := koanf.New(".")

	if err := konf.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, errorchain.NewWithMessagef(radixroute.ErrConfiguration,
			"failed to load yaml config from %s", configFile).CausedBy(err)
	}

	return konf, nil
}
