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
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

const escapedUnderscore = `\:\`

// envKey maps an environment variable name to a config key. A single underscore
// separates hierarchy levels, a double one stands for an underscore in a key name,
// e.g. PREFIX_ROUTER_STRICT__TRAILING__SLASH is router.strict_trailing_slash.
func envKey(prefix, name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, prefix))
	key = strings.ReplaceAll(key, "__", escapedUnderscore)
	key = strings.ReplaceAll(key, "_", ".")

	return strings.ReplaceAll(key, escapedUnderscore, "_")
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	konf := koanf.New(".")

	// without a prefix every variable of the process environment would be taken into account
	if len(prefix) == 0 {
		return konf, nil
	}

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			return envKey(prefix, key), val
		},
	})

	if err := konf.Load(provider, nil); err != nil {
		return nil, errorchain.NewWithMessage(radixroute.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return konf, nil
}
