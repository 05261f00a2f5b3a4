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
	"context"
	"sync"

	"github.com/jellydator/ttlcache/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/dadrus/radixroute/internal/metadata"
	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/routetree"
	"github.com/dadrus/radixroute/internal/x/errorchain"
	"github.com/dadrus/radixroute/internal/x/slicex"
)

const (
	resultStatic  = "static"
	resultDynamic = "dynamic"
	resultMiss    = "miss"
)

type repository struct {
	l zerolog.Logger

	// known routes per source with normalized patterns and the source owning a pattern
	knownRoutes      map[string][]Route
	owners           map[string]string
	knownRoutesMutex sync.Mutex

	tree      *routetree.Tree
	treeMutex sync.RWMutex

	cache       *ttlcache.Cache[string, *routetree.MatchedRoute]
	resolutions *prometheus.CounterVec
}

// NewRepository creates a standalone Repository, which is not registered with any
// metrics registry and whose resolution cache, if enabled, is not cleaned up proactively.
func NewRepository(logger zerolog.Logger, opts ...Option) Repository {
	return newRepository(logger, opts...)
}

func newRepository(logger zerolog.Logger, opts ...Option) *repository {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	repo := &repository{
		l:           logger,
		knownRoutes: make(map[string][]Route),
		owners:      make(map[string]string),
		tree:        routetree.New(routetree.WithStrictTrailingSlash(o.strictTrailingSlash)),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "radixroute",
			Subsystem: "router",
			Name:      "resolutions_total",
			Help:      "Number of path resolutions by result",
		}, []string{"result"}),
	}

	if o.cacheTTL > 0 {
		repo.cache = ttlcache.New[string, *routetree.MatchedRoute](
			ttlcache.WithTTL[string, *routetree.MatchedRoute](o.cacheTTL),
			ttlcache.WithCapacity[string, *routetree.MatchedRoute](o.cacheCapacity),
			ttlcache.WithDisableTouchOnHit[string, *routetree.MatchedRoute](),
		)
	}

	return repo
}

func (r *repository) Start(_ context.Context) error {
	if r.cache != nil {
		r.l.Debug().Msg("Starting resolution cache")

		go r.cache.Start()
	}

	return nil
}

func (r *repository) Stop(_ context.Context) error {
	if r.cache != nil {
		r.l.Debug().Msg("Stopping resolution cache")

		r.cache.Stop()
	}

	return nil
}

func (r *repository) Resolve(path string) (*routetree.MatchedRoute, error) {
	r.treeMutex.RLock()
	defer r.treeMutex.RUnlock()

	normalized := routetree.Normalize(path, r.tree.StrictTrailingSlash())

	if r.cache != nil {
		if item := r.cache.Get(normalized); item != nil {
			r.countResolution(item.Value())

			return item.Value(), nil
		}
	}

	match, ok := r.tree.Lookup(normalized)
	if !ok || match.Metadata == nil {
		r.resolutions.WithLabelValues(resultMiss).Inc()

		return nil, errorchain.NewWithMessagef(radixroute.ErrRouteNotFound, "no route registered for %s", path)
	}

	if r.cache != nil {
		r.cache.Set(normalized, match, ttlcache.DefaultTTL)
	}

	r.countResolution(match)

	return match, nil
}

func (r *repository) countResolution(match *routetree.MatchedRoute) {
	if match.Static {
		r.resolutions.WithLabelValues(resultStatic).Inc()
	} else {
		r.resolutions.WithLabelValues(resultDynamic).Inc()
	}
}

func (r *repository) AddRouteSet(srcID string, routes []Route) error {
	r.knownRoutesMutex.Lock()
	defer r.knownRoutesMutex.Unlock()

	if _, known := r.knownRoutes[srcID]; known {
		r.l.Debug().Str("_src", srcID).Msg("Route set already known. Updating it")
	}

	return r.applyRouteSet(srcID, routes)
}

func (r *repository) UpdateRouteSet(srcID string, routes []Route) error {
	r.knownRoutesMutex.Lock()
	defer r.knownRoutesMutex.Unlock()

	return r.applyRouteSet(srcID, routes)
}

func (r *repository) DeleteRouteSet(srcID string) error {
	r.knownRoutesMutex.Lock()
	defer r.knownRoutesMutex.Unlock()

	applicable, known := r.knownRoutes[srcID]
	if !known {
		return nil
	}

	tmp := r.currentTree().Clone()

	if err := r.removeRoutesFrom(tmp, applicable); err != nil {
		return err
	}

	for _, route := range applicable {
		delete(r.owners, route.Pattern)
	}

	delete(r.knownRoutes, srcID)

	r.swap(tmp)

	return nil
}

// applyRouteSet brings the routes registered for srcID in line with routes. Must
// be called with knownRoutesMutex held.
func (r *repository) applyRouteSet(srcID string, routes []Route) error {
	tree := r.currentTree()
	byPattern := func(route Route) string { return route.Pattern }

	normalized := make([]Route, len(routes))
	for idx, route := range routes {
		normalized[idx] = Route{
			Pattern:  routetree.Normalize(route.Pattern, tree.StrictTrailingSlash()),
			Metadata: route.Metadata,
		}

		// a pattern without metadata would not resolve
		if normalized[idx].Metadata == nil {
			normalized[idx].Metadata = metadata.New()
		}

		if !routetree.Resolvable(normalized[idx].Pattern) {
			return errorchain.NewWithMessagef(radixroute.ErrConfiguration,
				"path %s of route set %s has segments after a wildcard", route.Pattern, srcID)
		}
	}

	incoming := slicex.Index(normalized, byPattern)
	if len(incoming) != len(normalized) {
		return errorchain.NewWithMessagef(radixroute.ErrConfiguration,
			"route set %s defines the same path more than once", srcID)
	}

	for pattern := range incoming {
		if owner, owned := r.owners[pattern]; owned && owner != srcID {
			return errorchain.NewWithMessagef(radixroute.ErrRouteConflict,
				"path %s of route set %s is already defined by route set %s", pattern, srcID, owner)
		}
	}

	applicable := r.knownRoutes[srcID]
	existing := slicex.Index(applicable, byPattern)

	deletedRoutes := slicex.Filter(applicable, func(route Route) bool {
		_, present := incoming[route.Pattern]

		return !present
	})

	newRoutes := slicex.Filter(normalized, func(route Route) bool {
		_, present := existing[route.Pattern]

		return !present
	})

	updatedRoutes := slicex.Filter(normalized, func(route Route) bool {
		known, present := existing[route.Pattern]

		return present && !known.Metadata.Equal(route.Metadata)
	})

	tmp := tree.Clone()

	if err := r.removeRoutesFrom(tmp, deletedRoutes); err != nil {
		return err
	}

	// insertion replaces the metadata of already registered patterns
	if err := r.addRoutesTo(tmp, append(newRoutes, updatedRoutes...)); err != nil {
		return err
	}

	for _, route := range deletedRoutes {
		delete(r.owners, route.Pattern)
	}

	for _, route := range newRoutes {
		r.owners[route.Pattern] = srcID
	}

	if len(normalized) == 0 {
		delete(r.knownRoutes, srcID)
	} else {
		r.knownRoutes[srcID] = normalized
	}

	r.l.Debug().
		Str("_src", srcID).
		Int("_created", len(newRoutes)).
		Int("_updated", len(updatedRoutes)).
		Int("_deleted", len(deletedRoutes)).
		Msg("Route set applied")

	r.swap(tmp)

	return nil
}

func (r *repository) addRoutesTo(tree *routetree.Tree, routes []Route) error {
	for _, route := range routes {
		if err := tree.Insert(route.Pattern, route.Metadata); err != nil {
			return errorchain.NewWithMessagef(radixroute.ErrConfiguration,
				"failed adding route %s", route.Pattern).CausedBy(err)
		}
	}

	return nil
}

func (r *repository) removeRoutesFrom(tree *routetree.Tree, routes []Route) error {
	for _, route := range routes {
		if !tree.Remove(route.Pattern) {
			return errorchain.NewWithMessagef(radixroute.ErrInternal,
				"failed removing route %s", route.Pattern)
		}
	}

	return nil
}

func (r *repository) currentTree() *routetree.Tree {
	r.treeMutex.RLock()
	defer r.treeMutex.RUnlock()

	return r.tree
}

func (r *repository) swap(tree *routetree.Tree) {
	r.treeMutex.Lock()
	defer r.treeMutex.Unlock()

	r.tree = tree

	if r.cache != nil {
		r.cache.DeleteAll()
	}
}
