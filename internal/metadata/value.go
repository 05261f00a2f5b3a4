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

package metadata

import (
	"strconv"

	"github.com/goccy/go-json"
)

type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is a tagged union holding exactly one of a string, an integer or a boolean.
type Value struct {
	kind Kind
	str  string
	num  int64
	flag bool
}

func String(val string) Value { return Value{kind: KindString, str: val} }

func Integer(val int64) Value { return Value{kind: KindInteger, num: val} }

func Boolean(val bool) Value { return Value{kind: KindBoolean, flag: val} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

func (v Value) AsInteger() (int64, bool) { return v.num, v.kind == KindInteger }

func (v Value) AsBoolean() (bool, bool) { return v.flag, v.kind == KindBoolean }

// Any returns the held value as a plain Go value (string, int64 or bool).
func (v Value) Any() any {
	switch v.kind {
	case KindInteger:
		return v.num
	case KindBoolean:
		return v.flag
	default:
		return v.str
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	default:
		return v.str
	}
}

func (v Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.Any()) }
