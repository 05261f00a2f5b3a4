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

package resolve

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/radixroute/internal/metadata"
	"github.com/dadrus/radixroute/internal/routes"
	"github.com/dadrus/radixroute/internal/routes/routeset"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

const (
	flagRoutes              = "routes"
	flagStrictTrailingSlash = "strict-trailing-slash"
)

var ErrUnresolvedPaths = errors.New("unresolved paths")

type result struct {
	Path       string            `json:"path"`
	Static     bool              `json:"static"`
	Metadata   *metadata.Store   `json:"metadata,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// NewResolveCommand represents the "resolve" command.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "resolve [paths to resolve]",
		SilenceUsage: true,
		Short:        "Resolves the given paths against the routes from the given route set files",
		Args:         cobra.MinimumNArgs(1),
		Example:      "radixroute resolve -r routes.yaml /users/42 /health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolvePaths(cmd, args)
		},
	}

	cmd.Flags().StringSliceP(flagRoutes, "r", nil, "Route set files to load. Can be given multiple times.")
	cmd.Flags().Bool(flagStrictTrailingSlash, false, "Treat paths with and without trailing slash as different.")

	_ = cmd.MarkFlagRequired(flagRoutes)

	return cmd
}

func resolvePaths(cmd *cobra.Command, paths []string) error {
	files, _ := cmd.Flags().GetStringSlice(flagRoutes)
	strict, _ := cmd.Flags().GetBool(flagStrictTrailingSlash)

	logger := zerolog.Nop()
	repo := routes.NewRepository(logger, routes.WithStrictTrailingSlash(strict))
	processor := routes.NewSetProcessor(repo, logger)

	parser, err := routeset.NewParser(true)
	if err != nil {
		return err
	}

	for _, file := range files {
		rs, err := loadRouteSet(parser, file)
		if err != nil {
			return err
		}

		if err = processor.OnCreated(rs); err != nil {
			return err
		}
	}

	unresolved := 0
	enc := json.NewEncoder(cmd.OutOrStdout())

	for _, path := range paths {
		res := result{Path: path}

		match, err := repo.Resolve(path)
		if err != nil {
			unresolved++

			res.Error = err.Error()
			if chain, ok := errorchain.From(err); ok {
				res.Error = chain.Message()
			}
		} else {
			res.Static = match.Static
			res.Metadata = match.Metadata
			res.Parameters = match.Parameters
		}

		if err = enc.Encode(res); err != nil {
			return err
		}
	}

	if unresolved != 0 {
		return errorchain.NewWithMessagef(ErrUnresolvedPaths, "%d of %d paths", unresolved, len(paths))
	}

	return nil
}

func loadRouteSet(parser *routeset.Parser, file string) (*routeset.RouteSet, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer fd.Close()

	rs, err := parser.Parse(routeset.ContentTypeOf(file), fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	rs.Source = "file_system:" + file

	return rs, nil
}
