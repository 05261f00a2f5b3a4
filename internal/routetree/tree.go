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
	"errors"
	"maps"
	"slices"

	"github.com/dadrus/radixroute/internal/metadata"
)

var ErrPlaceholderLimitExceeded = errors.New("too many unnamed placeholders")

const (
	rootNode = 0
	noNode   = -1
)

type (
	node struct {
		kind     Kind
		maxDepth int
		parent   int

		children            map[string]int
		wildcardChild       int
		placeholderChildren []int

		paramName string
		metadata  *metadata.Store
	}

	// Tree is a segment based routing tree. The nodes live in an arena and
	// reference each other by index. Tree performs no synchronization: mutations
	// require exclusive access, lookups may run concurrently with each other only.
	Tree struct {
		nodes []node
		free  []int

		// fully static, normalized paths to their terminal node
		staticRoutes map[string]int

		strictTrailingSlash bool
	}
)

func New(opts ...Option) *Tree {
	tree := &Tree{
		nodes:        []node{{parent: noNode, wildcardChild: noNode}},
		staticRoutes: make(map[string]int),
	}

	for _, opt := range opts {
		opt(tree)
	}

	return tree
}

func (t *Tree) StrictTrailingSlash() bool { return t.strictTrailingSlash }

// StaticRoutes returns the number of entries in the fast path index.
func (t *Tree) StaticRoutes() int { return len(t.staticRoutes) }

// Len returns the number of live nodes including the root.
func (t *Tree) Len() int { return len(t.nodes) - len(t.free) }

// Routes returns the number of registered patterns.
func (t *Tree) Routes() int {
	count := 0

	for idx := range t.nodes {
		if t.nodes[idx].metadata != nil {
			count++
		}
	}

	return count
}

func (t *Tree) Empty() bool { return t.Routes() == 0 }

// Clone returns a deep copy of the tree structure. Metadata stores are shared.
func (t *Tree) Clone() *Tree {
	nodes := make([]node, len(t.nodes))

	for idx, n := range t.nodes {
		n.children = maps.Clone(n.children)
		n.placeholderChildren = slices.Clone(n.placeholderChildren)
		nodes[idx] = n
	}

	return &Tree{
		nodes:               nodes,
		free:                slices.Clone(t.free),
		staticRoutes:        maps.Clone(t.staticRoutes),
		strictTrailingSlash: t.strictTrailingSlash,
	}
}

func (t *Tree) newNode(kind Kind, parent int) int {
	n := node{kind: kind, parent: parent, wildcardChild: noNode}

	if last := len(t.free) - 1; last >= 0 {
		idx := t.free[last]
		t.free = t.free[:last]
		t.nodes[idx] = n

		return idx
	}

	t.nodes = append(t.nodes, n)

	return len(t.nodes) - 1
}

func (t *Tree) releaseNode(idx int) {
	t.nodes[idx] = node{parent: noNode, wildcardChild: noNode}
	t.free = append(t.free, idx)
}

func (t *Tree) child(idx int, segment string) (int, bool) {
	child, ok := t.nodes[idx].children[segment]

	return child, ok
}
