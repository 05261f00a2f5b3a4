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

package serve

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/radixroute/cmd/flags"
	"github.com/dadrus/radixroute/internal"
)

// NewServeCommand represents the "serve" command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Starts radixroute's resolve and management services",
		Example: "radixroute serve -c config.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createApp(cmd, internal.Module)
			if err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}

	flags.RegisterGlobalFlags(cmd)

	return cmd
}
