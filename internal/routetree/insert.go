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
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dadrus/radixroute/internal/metadata"
	"github.com/dadrus/radixroute/internal/x"
)

// unnamed placeholders are numbered with an 8 bit counter
const maxUnnamedPlaceholders = math.MaxUint8

// Insert registers pattern and attaches md to its terminal node, replacing the
// metadata of a previous registration of the same pattern. The tree is left
// untouched if an error is returned.
func (t *Tree) Insert(pattern string, md *metadata.Store) error {
	path := Normalize(pattern, t.strictTrailingSlash)
	segments := splitPath(path)

	if err := checkPlaceholderLimit(pattern, segments); err != nil {
		return err
	}

	var (
		isStatic = true
		unnamed  int
		current  = rootNode
		visited  = make([]int, 1, len(segments)+1)
	)

	visited[0] = rootNode

	for _, segment := range segments {
		kind := Classify(segment)
		paramName := ""

		switch {
		case kind == Placeholder && segment == unnamedPlaceholder:
			paramName = "_" + strconv.Itoa(unnamed)
			unnamed++
		case kind == Placeholder:
			paramName = strings.TrimPrefix(segment, placeholderPrefix)
		case kind == Wildcard:
			paramName = wildcardName(segment)
		}

		isStatic = isStatic && kind == Static

		child, ok := t.child(current, segment)
		if !ok {
			child = t.addChild(current, segment, kind, paramName)
		}

		current = child
		visited = append(visited, current)
	}

	for depth, idx := range visited {
		t.nodes[idx].maxDepth = max(t.nodes[idx].maxDepth, len(visited)-depth)
	}

	t.nodes[current].metadata = md

	if isStatic {
		t.staticRoutes[path] = current
	}

	return nil
}

func (t *Tree) addChild(parent int, segment string, kind Kind, paramName string) int {
	idx := t.newNode(kind, parent)
	t.nodes[idx].paramName = x.IfThenElse(kind == Static, "", paramName)

	owner := &t.nodes[parent]
	if owner.children == nil {
		owner.children = make(map[string]int)
	}

	owner.children[segment] = idx

	switch kind {
	case Placeholder:
		owner.placeholderChildren = append(owner.placeholderChildren, idx)
	case Wildcard:
		owner.wildcardChild = idx
	case Static:
	}

	return idx
}

// ValidatePattern reports whether pattern can be inserted into a tree.
func ValidatePattern(pattern string) error {
	return checkPlaceholderLimit(pattern, splitPath(pattern))
}

// Resolvable reports whether a path can ever end on the terminal node of
// pattern. A wildcard consumes all remaining segments, so it must be the last one.
func Resolvable(pattern string) bool {
	segments := splitPath(pattern)

	return !slices.ContainsFunc(segments[:len(segments)-1],
		func(segment string) bool { return Classify(segment) == Wildcard })
}

func checkPlaceholderLimit(pattern string, segments []string) error {
	if count := countUnnamedPlaceholders(segments); count > maxUnnamedPlaceholders {
		return fmt.Errorf("%w: %s has %d, at most %d are supported",
			ErrPlaceholderLimitExceeded, pattern, count, maxUnnamedPlaceholders)
	}

	return nil
}

func countUnnamedPlaceholders(segments []string) int {
	count := 0

	for _, segment := range segments {
		if segment == unnamedPlaceholder {
			count++
		}
	}

	return count
}
