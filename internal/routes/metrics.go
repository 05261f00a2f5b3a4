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
	"github.com/DmitriyVTitov/size"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	routesDesc = prometheus.NewDesc( //nolint:gochecknoglobals
		"radixroute_router_routes",
		"Number of registered routes",
		[]string{"kind"}, nil,
	)
	routeSetsDesc = prometheus.NewDesc( //nolint:gochecknoglobals
		"radixroute_router_route_sets",
		"Number of loaded route sets",
		nil, nil,
	)
	treeNodesDesc = prometheus.NewDesc( //nolint:gochecknoglobals
		"radixroute_router_tree_nodes",
		"Number of live nodes in the route tree",
		nil, nil,
	)
	treeSizeDesc = prometheus.NewDesc( //nolint:gochecknoglobals
		"radixroute_router_tree_size_bytes",
		"Approximate memory held by the route tree",
		nil, nil,
	)
)

func (r *repository) Describe(ch chan<- *prometheus.Desc) {
	r.resolutions.Describe(ch)

	ch <- routesDesc
	ch <- routeSetsDesc
	ch <- treeNodesDesc
	ch <- treeSizeDesc
}

func (r *repository) Collect(ch chan<- prometheus.Metric) {
	r.resolutions.Collect(ch)

	r.knownRoutesMutex.Lock()
	routeSets := len(r.knownRoutes)
	r.knownRoutesMutex.Unlock()

	r.treeMutex.RLock()
	routes := r.tree.Routes()
	static := r.tree.StaticRoutes()
	nodes := r.tree.Len()
	treeSize := size.Of(r.tree)
	r.treeMutex.RUnlock()

	ch <- prometheus.MustNewConstMetric(routesDesc, prometheus.GaugeValue, float64(static), "static")
	ch <- prometheus.MustNewConstMetric(routesDesc, prometheus.GaugeValue, float64(routes-static), "dynamic")
	ch <- prometheus.MustNewConstMetric(routeSetsDesc, prometheus.GaugeValue, float64(routeSets))
	ch <- prometheus.MustNewConstMetric(treeNodesDesc, prometheus.GaugeValue, float64(nodes))
	ch <- prometheus.MustNewConstMetric(treeSizeDesc, prometheus.GaugeValue, float64(treeSize))
}
