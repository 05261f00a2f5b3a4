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
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/ccoveille/go-safecast"
	"github.com/goccy/go-json"
)

var ErrUnsupportedValue = errors.New("unsupported metadata value")

// Store is the attribute bag attached to a registered route. Once handed over to
// a tree it is shared by reference and must not be modified anymore.
type Store struct {
	entries map[string]Value
}

func New() *Store {
	return &Store{entries: make(map[string]Value)}
}

// FromMap converts decoded document values into a Store. Supported are strings,
// booleans, integers of any width and floats without a fractional part.
func FromMap(values map[string]any) (*Store, error) {
	store := &Store{entries: make(map[string]Value, len(values))}

	for key, raw := range values {
		val, err := toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: key %s: %w", ErrUnsupportedValue, key, err)
		}

		store.entries[key] = val
	}

	return store, nil
}

// Insert sets the value for the given key and returns the value it replaced, if any.
func (s *Store) Insert(key string, value Value) (Value, bool) {
	old, present := s.entries[key]
	s.entries[key] = value

	return old, present
}

// Remove deletes the given key and returns the removed value, if any.
func (s *Store) Remove(key string) (Value, bool) {
	old, present := s.entries[key]
	if present {
		delete(s.entries, key)
	}

	return old, present
}

func (s *Store) Get(key string) (Value, bool) {
	val, present := s.entries[key]

	return val, present
}

// Merge copies all entries of other into s. Values from other win on conflicts.
func (s *Store) Merge(other *Store) {
	if other == nil {
		return
	}

	maps.Copy(s.entries, other.entries)
}

func (s *Store) Len() int { return len(s.entries) }

func (s *Store) Keys() []string { return slices.Sorted(maps.Keys(s.entries)) }

// Equal reports whether both stores hold the same entries.
func (s *Store) Equal(other *Store) bool {
	if s == nil || other == nil {
		return s == other
	}

	return maps.Equal(s.entries, other.entries)
}

func (s *Store) Clone() *Store { return &Store{entries: maps.Clone(s.entries)} }

func (s *Store) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	return json.Marshal(s.entries)
}

func toValue(raw any) (Value, error) {
	switch val := raw.(type) {
	case string:
		return String(val), nil
	case bool:
		return Boolean(val), nil
	case int:
		return Integer(int64(val)), nil
	case int8:
		return Integer(int64(val)), nil
	case int16:
		return Integer(int64(val)), nil
	case int32:
		return Integer(int64(val)), nil
	case int64:
		return Integer(val), nil
	case uint8:
		return Integer(int64(val)), nil
	case uint16:
		return Integer(int64(val)), nil
	case uint32:
		return Integer(int64(val)), nil
	case uint:
		return integer(val)
	case uint64:
		return integer(val)
	case float64:
		if val != math.Trunc(val) {
			return Value{}, fmt.Errorf("%v is not an integer", val)
		}

		return integer(val)
	case json.Number:
		num, err := val.Int64()
		if err != nil {
			return Value{}, err
		}

		return Integer(num), nil
	default:
		return Value{}, fmt.Errorf("type %T", raw)
	}
}

func integer[T safecast.Input](val T) (Value, error) {
	num, err := safecast.Convert[int64](val)
	if err != nil {
		return Value{}, err
	}

	return Integer(num), nil
}

func (s *Store) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil //nolint:nilnil
	}

	values := make(map[string]any, len(s.entries))
	for key, val := range s.entries {
		values[key] = val.Any()
	}

	return values, nil
}
