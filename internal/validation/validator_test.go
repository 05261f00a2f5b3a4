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

package validation

import (
	"strings"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lowercaseValidator struct{}

func (lowercaseValidator) Tag() string { return "lowercase_only" }

func (lowercaseValidator) Validate(fl validator.FieldLevel) bool {
	return strings.ToLower(fl.Field().String()) == fl.Field().String()
}

func (lowercaseValidator) MessageTemplate() string { return "{0} must be lower case" }

func (lowercaseValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, _ := ut.T(fe.Tag(), fe.Field())

	return msg
}

func TestValidatorValidateStruct(t *testing.T) {
	t.Parallel()

	type nested struct {
		Path string `json:"path" validate:"required"`
	}

	type document struct {
		Version string   `koanf:"version" validate:"required,eq=1"`
		Name    string   `json:"name"     validate:"lowercase_only"`
		Routes  []nested `yaml:"routes"   validate:"required,gt=0,dive"`
	}

	lv := lowercaseValidator{}

	v, err := NewValidator(WithTagValidator(lv), WithErrorTranslator(lv))
	require.NoError(t, err)

	for _, tc := range []struct {
		uc     string
		doc    document
		assert func(t *testing.T, err error)
	}{
		{
			uc:  "valid document",
			doc: document{Version: "1", Name: "users", Routes: []nested{{Path: "/users"}}},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:  "missing version and routes",
			doc: document{Name: "users"},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "'version' is a required field")
				assert.Contains(t, err.Error(), "'routes' is a required field")
			},
		},
		{
			uc:  "custom tag violated",
			doc: document{Version: "1", Name: "Users", Routes: []nested{{Path: "/users"}}},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Equal(t, "'name' must be lower case", err.Error())
			},
		},
		{
			uc:  "nested field violated",
			doc: document{Version: "1", Name: "users", Routes: []nested{{}}},
			assert: func(t *testing.T, err error) {
				t.Helper()

				var errs validator.ValidationErrors

				require.ErrorAs(t, err, &errs)
				assert.Contains(t, err.Error(), "'path' is a required field")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			tc.assert(t, v.ValidateStruct(tc.doc))
		})
	}
}
