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

package management

import (
	"log"
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/dadrus/radixroute/internal/config"
	"github.com/dadrus/radixroute/internal/handler/middleware/http/accesslog"
	"github.com/dadrus/radixroute/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/radixroute/internal/handler/middleware/http/passthrough"
	"github.com/dadrus/radixroute/internal/handler/middleware/http/recovery"
	"github.com/dadrus/radixroute/internal/x"
)

func newService(conf *config.Configuration, logger zerolog.Logger, gatherer prometheus.Gatherer) *http.Server {
	cfg := conf.Serve.Management
	eh := errorhandler.New(errorhandler.WithVerboseErrors(cfg.Verbose))

	hc := alice.New(
		accesslog.New(logger),
		recovery.New(eh),
		x.IfThenElseExec(cfg.CORS != nil,
			func() func(http.Handler) http.Handler {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
	).Then(newManagementHandler(gatherer))

	return &http.Server{
		Handler:        hc,
		Addr:           cfg.Address(),
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: int(cfg.BufferLimit),
		ErrorLog:       log.New(logger.With().Str("_service", serviceName).Logger(), "", 0),
	}
}
