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
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/dadrus/radixroute/internal/routetree"
)

type patternValidator struct{}

func (patternValidator) Tag() string { return "route_pattern" }

func (patternValidator) Validate(fl validator.FieldLevel) bool {
	pattern := fl.Field().String()

	return routetree.ValidatePattern(pattern) == nil &&
		routetree.Resolvable(routetree.Normalize(pattern, false))
}

func (patternValidator) MessageTemplate() string {
	return "{0} must not contain more than 255 unnamed placeholders or segments after a wildcard"
}

func (patternValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return msg
}
