// Copyright 2022-2025 Dimitrij Drus <dadrus@gmx.de>
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

package routetree

import (
	"strings"

	"github.com/dadrus/radixroute/internal/metadata"
)

type MatchedRoute struct {
	// Metadata is nil if the path ended on a node no pattern terminates at.
	Metadata *metadata.Store
	// Parameters is nil if nothing has been captured.
	Parameters map[string]string
	// Static is set if the route has been resolved via the fast path index.
	Static bool
}

// Lookup resolves path against the registered patterns. The fast path index is
// probed with path as given, so callers are expected to normalize path the same
// way Insert does (see Normalize) if trailing slashes shall be tolerated.
func (t *Tree) Lookup(path string) (*MatchedRoute, bool) {
	if idx, ok := t.staticRoutes[path]; ok {
		return &MatchedRoute{Metadata: t.nodes[idx].metadata, Static: true}, true
	}

	var (
		segments      = splitPath(path)
		params        map[string]string
		current       = rootNode
		fallback      = noNode
		fallbackValue string
	)

	for pos, segment := range segments {
		n := &t.nodes[current]

		// the deepest wildcard seen so far wins
		if n.wildcardChild != noNode {
			fallback = n.wildcardChild
			fallbackValue = strings.Join(segments[pos:], separator)
		}

		if child, ok := n.children[segment]; ok {
			current = child

			continue
		}

		current = t.selectPlaceholder(n, len(segments)-pos)
		if current == noNode {
			break
		}

		params = capture(params, t.nodes[current].paramName, segment)
	}

	if (current == noNode || t.nodes[current].metadata == nil) && fallback != noNode {
		current = fallback
		params = capture(params, t.nodes[current].paramName, fallbackValue)
	}

	if current == noNode {
		return nil, false
	}

	return &MatchedRoute{Metadata: t.nodes[current].metadata, Parameters: params}, true
}

// selectPlaceholder picks the placeholder child to descend into. With several
// candidates the first one whose depth matches the remaining segment count wins.
func (t *Tree) selectPlaceholder(n *node, remaining int) int {
	switch len(n.placeholderChildren) {
	case 0:
		return noNode
	case 1:
		return n.placeholderChildren[0]
	}

	for _, idx := range n.placeholderChildren {
		if t.nodes[idx].maxDepth == remaining {
			return idx
		}
	}

	return noNode
}

func capture(params map[string]string, name, value string) map[string]string {
	if params == nil {
		params = make(map[string]string)
	}

	params[name] = value

	return params
}
