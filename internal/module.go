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

package internal

import (
	"go.uber.org/fx"

	"github.com/dadrus/radixroute/internal/handler/management"
	"github.com/dadrus/radixroute/internal/handler/resolve"
	"github.com/dadrus/radixroute/internal/prometheus"
	"github.com/dadrus/radixroute/internal/routes"
	"github.com/dadrus/radixroute/internal/routes/provider/filesystem"
)

// Module wires all components of the serve command. The configuration and the
// logger are expected to be supplied by the caller.
// nolint: gochecknoglobals
var Module = fx.Options(
	prometheus.Module,
	routes.Module,
	filesystem.Module,
	resolve.Module,
	management.Module,
)
