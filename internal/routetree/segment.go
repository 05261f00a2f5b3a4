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

import "strings"

const (
	separator = "/"

	wildcardToken      = "**"
	namedWildcardToken = "**:"
	placeholderPrefix  = ":"
	unnamedPlaceholder = "*"

	defaultWildcardName = "_"
)

type Kind uint8

const (
	Static Kind = iota
	Placeholder
	Wildcard
)

func (k Kind) String() string {
	switch k {
	case Placeholder:
		return "placeholder"
	case Wildcard:
		return "wildcard"
	default:
		return "static"
	}
}

// Normalize trims trailing slashes unless strict is set. An empty path becomes "/".
func Normalize(path string, strict bool) string {
	if strict {
		return path
	}

	if trimmed := strings.TrimRight(path, separator); len(trimmed) != 0 {
		return trimmed
	}

	return separator
}

// Classify determines how a single path segment of a pattern is matched.
func Classify(segment string) Kind {
	switch {
	case segment == wildcardToken || strings.HasPrefix(segment, namedWildcardToken):
		return Wildcard
	case strings.HasPrefix(segment, placeholderPrefix) || segment == unnamedPlaceholder:
		return Placeholder
	default:
		return Static
	}
}

func splitPath(path string) []string { return strings.Split(path, separator) }

func wildcardName(segment string) string {
	if name := strings.TrimPrefix(segment, namedWildcardToken); name != segment && len(name) != 0 {
		return name
	}

	return defaultWildcardName
}
