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

package routeset

import "time"

const CurrentVersion = "1"

type MetaData struct {
	// Source identifies the origin of the route set, like the file it has been loaded from.
	Source  string    `json:"-" yaml:"-"`
	ModTime time.Time `json:"-" yaml:"-"`
}

type RouteSet struct {
	MetaData

	Version string  `json:"version" validate:"required"`
	Name    string  `json:"name"`
	Routes  []Route `json:"routes"  validate:"required,gt=0,unique=Path,dive"`
}

type Route struct {
	Path     string         `json:"path"     validate:"required,route_pattern"`
	Metadata map[string]any `json:"metadata"`
}

func (rs *RouteSet) Paths() []string {
	paths := make([]string, len(rs.Routes))

	for idx, route := range rs.Routes {
		paths[idx] = route.Path
	}

	return paths
}
