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

package validate

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/radixroute/internal/routes"
	"github.com/dadrus/radixroute/internal/routes/routeset"
)

// NewValidateRoutesCommand represents the "validate routes" command.
func NewValidateRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "routes [paths to route set files]",
		Short:   "Validates route set files",
		Args:    cobra.MinimumNArgs(1),
		Example: "radixroute validate routes users.yaml orders.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRouteSets(args); err != nil {
				return err
			}

			cmd.Println("Route sets are valid")

			return nil
		},
	}
}

// validateRouteSets loads all given files into one repository, so conflicts
// between the route sets are detected as well.
func validateRouteSets(files []string) error {
	logger := zerolog.Nop()
	processor := routes.NewSetProcessor(routes.NewRepository(logger), logger)

	parser, err := routeset.NewParser(false)
	if err != nil {
		return err
	}

	var errs []error

	for _, file := range files {
		if err = validateRouteSet(parser, processor, file); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}

	return errors.Join(errs...)
}

func validateRouteSet(parser *routeset.Parser, processor routes.SetProcessor, file string) error {
	fd, err := os.Open(file)
	if err != nil {
		return err
	}

	defer fd.Close()

	rs, err := parser.Parse(routeset.ContentTypeOf(file), fd)
	if err != nil {
		return err
	}

	rs.Source = "file_system:" + file

	return processor.OnCreated(rs)
}
