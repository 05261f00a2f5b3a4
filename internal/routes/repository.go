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
	"errors"

	"github.com/dadrus/radixroute/internal/metadata"
	"github.com/dadrus/radixroute/internal/routes/routeset"
	"github.com/dadrus/radixroute/internal/routetree"
)

var ErrUnsupportedRouteSetVersion = errors.New("unsupported route set version")

// Route is a path pattern together with the metadata it resolves to.
type Route struct {
	Pattern  string
	Metadata *metadata.Store
}

type Repository interface {
	Resolve(path string) (*routetree.MatchedRoute, error)

	AddRouteSet(srcID string, routes []Route) error
	UpdateRouteSet(srcID string, routes []Route) error
	DeleteRouteSet(srcID string) error
}

type SetProcessor interface {
	OnCreated(rs *routeset.RouteSet) error
	OnUpdated(rs *routeset.RouteSet) error
	OnDeleted(rs *routeset.RouteSet) error
}
