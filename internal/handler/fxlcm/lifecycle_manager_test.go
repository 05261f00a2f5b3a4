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

package fxlcm

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/radixroute/internal/radixroute"
)

type serverMock struct {
	mock.Mock
}

func (m *serverMock) Serve(ln net.Listener) error {
	args := m.Called(ln)

	return args.Error(0)
}

func (m *serverMock) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestLifecycleManagerStart(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		address string
		setup   func(t *testing.T, srv *serverMock)
		assert  func(t *testing.T, err error, logs *syncBuffer)
	}{
		{
			uc:      "successful start",
			address: "127.0.0.1:0",
			setup: func(t *testing.T, srv *serverMock) {
				t.Helper()

				srv.On("Serve", mock.Anything).Return(http.ErrServerClosed).Run(func(args mock.Arguments) {
					ln, ok := args.Get(0).(net.Listener)
					if ok {
						_ = ln.Close()
					}
				})
			},
			assert: func(t *testing.T, err error, logs *syncBuffer) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logs.String(), "Starting listening")
				assert.Contains(t, logs.String(), `"_service":"foo"`)
				assert.Eventually(t, func() bool {
					return strings.Contains(logs.String(), "Service stopped")
				}, time.Second, 10*time.Millisecond)
			},
		},
		{
			uc:      "failed to listen",
			address: "127.0.0.1:-1",
			setup: func(t *testing.T, _ *serverMock) {
				t.Helper()
			},
			assert: func(t *testing.T, err error, logs *syncBuffer) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, radixroute.ErrInternal)
				assert.Contains(t, err.Error(), "foo service")
				assert.NotContains(t, logs.String(), "Starting listening")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			srv := &serverMock{}
			logs := &syncBuffer{}

			tc.setup(t, srv)

			lcm := &LifecycleManager{
				ServiceName:    "foo",
				ServiceAddress: tc.address,
				Server:         srv,
				Logger:         zerolog.New(logs),
			}

			// WHEN
			err := lcm.Start(t.Context())

			// THEN
			tc.assert(t, err, logs)
			srv.AssertExpectations(t)
		})
	}
}

func TestLifecycleManagerStop(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		err    error
		assert func(t *testing.T, err error, logs string)
	}{
		{
			uc: "stopped without error",
			assert: func(t *testing.T, err error, logs string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logs, "Tearing down service")
				assert.NotContains(t, logs, "error")
			},
		},
		{
			uc:  "stopped with error",
			err: errors.New("test error"),
			assert: func(t *testing.T, err error, logs string) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, logs, "Tearing down service")
				assert.Contains(t, logs, "Graceful shutdown failed")
				assert.Contains(t, logs, "test error")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			srv := &serverMock{}
			srv.On("Shutdown", mock.Anything).Return(tc.err)

			logs := &syncBuffer{}

			lcm := &LifecycleManager{
				ServiceName: "foo",
				Server:      srv,
				Logger:      zerolog.New(logs),
			}

			// WHEN
			err := lcm.Stop(t.Context())

			// THEN
			tc.assert(t, err, logs.String())
			srv.AssertExpectations(t)
		})
	}
}
