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

import "slices"

// Remove detaches the metadata registered for pattern. pattern is matched
// segment by segment against literal child keys only and is not normalized, so
// it must be given in the form it has been stored in. A terminal node left
// without children is pruned. Returns true if metadata has been detached.
func (t *Tree) Remove(pattern string) bool {
	delete(t.staticRoutes, pattern)

	segments := splitPath(pattern)
	current := rootNode

	for _, segment := range segments {
		child, ok := t.child(current, segment)
		if !ok {
			return false
		}

		current = child
	}

	terminal := &t.nodes[current]
	if terminal.metadata == nil {
		return false
	}

	terminal.metadata = nil

	if len(terminal.children) == 0 && terminal.parent != noNode {
		t.prune(current, segments[len(segments)-1])
	}

	return true
}

// prune unlinks a childless node from its parent. Siblings registered as
// placeholder or wildcard children of the same parent stay untouched.
func (t *Tree) prune(idx int, segment string) {
	parent := &t.nodes[t.nodes[idx].parent]

	delete(parent.children, segment)

	if parent.wildcardChild == idx {
		parent.wildcardChild = noNode
	}

	parent.placeholderChildren = slices.DeleteFunc(parent.placeholderChildren,
		func(child int) bool { return child == idx })

	t.releaseNode(idx)
}
