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
	"github.com/rs/zerolog"

	"github.com/dadrus/radixroute/internal/metadata"
	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/routes/routeset"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

type setProcessor struct {
	r Repository
	l zerolog.Logger
}

func NewSetProcessor(repository Repository, logger zerolog.Logger) SetProcessor {
	return &setProcessor{
		r: repository,
		l: logger,
	}
}

func (p *setProcessor) isVersionSupported(version string) bool {
	return version == routeset.CurrentVersion
}

func (p *setProcessor) loadRoutes(rs *routeset.RouteSet) ([]Route, error) {
	routes := make([]Route, len(rs.Routes))

	for idx, rc := range rs.Routes {
		md, err := metadata.FromMap(rc.Metadata)
		if err != nil {
			return nil, errorchain.NewWithMessagef(radixroute.ErrConfiguration,
				"failed loading metadata of route %s", rc.Path).CausedBy(err)
		}

		routes[idx] = Route{Pattern: rc.Path, Metadata: md}
	}

	return routes, nil
}

func (p *setProcessor) OnCreated(rs *routeset.RouteSet) error {
	if !p.isVersionSupported(rs.Version) {
		return errorchain.NewWithMessage(ErrUnsupportedRouteSetVersion, rs.Version)
	}

	routes, err := p.loadRoutes(rs)
	if err != nil {
		return err
	}

	if err = p.r.AddRouteSet(rs.Source, routes); err != nil {
		return err
	}

	p.logChange(rs, "create")

	return nil
}

func (p *setProcessor) OnUpdated(rs *routeset.RouteSet) error {
	if !p.isVersionSupported(rs.Version) {
		return errorchain.NewWithMessage(ErrUnsupportedRouteSetVersion, rs.Version)
	}

	routes, err := p.loadRoutes(rs)
	if err != nil {
		return err
	}

	if err = p.r.UpdateRouteSet(rs.Source, routes); err != nil {
		return err
	}

	p.logChange(rs, "update")

	return nil
}

func (p *setProcessor) OnDeleted(rs *routeset.RouteSet) error {
	if err := p.r.DeleteRouteSet(rs.Source); err != nil {
		return err
	}

	p.logChange(rs, "remove")

	return nil
}

func (p *setProcessor) logChange(rs *routeset.RouteSet, changeType string) {
	p.l.Info().
		Str("_src", rs.Source).
		Str("_name", rs.Name).
		Str("_type", changeType).
		Int("_routes", len(rs.Routes)).
		Msg("Route set changed")
}
