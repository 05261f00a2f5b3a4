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

package accesslog

import (
	"net"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dadrus/radixroute/internal/x"
)

const headerRequestID = "X-Request-Id"

// New logs the start and the end of every transaction and makes the transaction
// scoped logger available via zerolog.Ctx to the handlers down the chain.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			start := time.Now()

			txID := req.Header.Get(headerRequestID)
			if len(txID) == 0 {
				txID = uuid.NewString()
			}

			logCtx := logger.With().
				Str("_tx_id", txID).
				Int64("_tx_start", start.Unix()).
				Str("_client_ip", clientIP(req.RemoteAddr)).
				Str("_http_method", req.Method).
				Str("_http_path", req.URL.Path).
				Str("_http_user_agent", req.Header.Get("User-Agent")).
				Str("_http_host", req.Host).
				Str("_http_scheme", x.IfThenElse(req.TLS != nil, "https", "http"))

			logCtx = logHeader(req, logCtx, "X-Forwarded-Proto", "_http_x_forwarded_proto")
			logCtx = logHeader(req, logCtx, "X-Forwarded-Host", "_http_x_forwarded_host")
			logCtx = logHeader(req, logCtx, "X-Forwarded-For", "_http_x_forwarded_for")

			accLog := logCtx.Logger()
			accLog.Info().Msg("TX started")

			rw.Header().Set(headerRequestID, txID)

			metrics := httpsnoop.CaptureMetrics(next, rw, req.WithContext(accLog.WithContext(req.Context())))

			accLog.Info().
				Int64("_body_bytes_sent", metrics.Written).
				Int("_http_status_code", metrics.Code).
				Int64("_tx_duration_ms", metrics.Duration.Milliseconds()).
				Msg("TX finished")
		})
	}
}

func clientIP(hostPort string) string {
	host, _, err := net.SplitHostPort(hostPort)
	if err != nil {
		return hostPort
	}

	return host
}

func logHeader(req *http.Request, logCtx zerolog.Context, headerName, logKey string) zerolog.Context {
	if headerValue := req.Header.Get(headerName); len(headerValue) != 0 {
		logCtx = logCtx.Str(logKey, headerValue)
	}

	return logCtx
}
