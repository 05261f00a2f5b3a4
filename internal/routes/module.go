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

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/radixroute/internal/config"
)

// Module is invoked on app bootstrapping.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		newRepositoryFromConfig,
		func(repo *repository) Repository { return repo },
		NewSetProcessor,
	),
	fx.Invoke(registerRepository),
)

func newRepositoryFromConfig(cfg *config.Configuration, logger zerolog.Logger) *repository {
	opts := []Option{WithStrictTrailingSlash(cfg.Router.StrictTrailingSlash)}

	if cfg.Router.Cache.Enabled {
		opts = append(opts, WithResolutionCache(cfg.Router.Cache.TTL, cfg.Router.Cache.Capacity))
	}

	return newRepository(logger, opts...)
}

func registerRepository(lifecycle fx.Lifecycle, repo *repository, registerer prometheus.Registerer) error {
	if err := registerer.Register(repo); err != nil {
		return err
	}

	lifecycle.Append(fx.Hook{
		OnStart: repo.Start,
		OnStop:  repo.Stop,
	})

	return nil
}
