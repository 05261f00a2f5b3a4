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

package filesystem

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/radixroute/internal/config"
	"github.com/dadrus/radixroute/internal/routes"
)

// Module is invoked on app bootstrapping.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Invoke(registerProvider),
)

type registrationArguments struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Configuration
	Processor routes.SetProcessor
	Logger    zerolog.Logger
}

func registerProvider(args registrationArguments) error {
	if args.Config.Providers.FileSystem == nil {
		return nil
	}

	provider, err := newProvider(args.Config.Providers.FileSystem, args.Processor, args.Logger)
	if err != nil {
		return err
	}

	args.Lifecycle.Append(
		fx.Hook{
			OnStart: func(_ context.Context) error { return provider.Start() },
			OnStop:  func(_ context.Context) error { return provider.Stop() },
		},
	)

	args.Logger.Info().Str("_provider_type", "file_system").Msg("Route provider configured.")

	return nil
}
