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

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dadrus/radixroute/internal/encoding"
	"github.com/dadrus/radixroute/internal/validation"
)

type Parser struct {
	validator         validation.Validator
	substituteEnvVars bool
}

func NewParser(substituteEnvVars bool) (*Parser, error) {
	pv := patternValidator{}

	validator, err := validation.NewValidator(
		validation.WithTagValidator(pv),
		validation.WithErrorTranslator(pv),
	)
	if err != nil {
		return nil, err
	}

	return &Parser{validator: validator, substituteEnvVars: substituteEnvVars}, nil
}

// Parse decodes and validates a single route set document of the given content type.
func (p *Parser) Parse(contentType string, reader io.Reader) (*RouteSet, error) {
	dec := encoding.NewDecoder[RouteSet](
		encoding.WithSourceContentType(contentType),
		encoding.WithValidator(p.validator),
		encoding.WithEnvVarsSubstitution(p.substituteEnvVars),
		encoding.WithErrorOnUnused(true),
	)

	rs, err := dec.Decode(reader)
	if err != nil {
		return nil, err
	}

	return &rs, nil
}

// ContentTypeOf derives the document content type from a file name. Everything
// not ending with .json is treated as YAML.
func ContentTypeOf(fileName string) string {
	if strings.EqualFold(filepath.Ext(fileName), ".json") {
		return encoding.ContentTypeJSON
	}

	return encoding.ContentTypeYAML
}
