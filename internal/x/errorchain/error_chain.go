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

package errorchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err error
	msg string
}

type message struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// ErrorChain is an error made of a leading sentinel error and its causes. The
// leading error determines the code the chain is rendered with.
type ErrorChain struct { // nolint: errname
	links []link
}

func New(err error) *ErrorChain {
	return &ErrorChain{links: []link{{err: err}}}
}

func NewWithMessage(err error, message string) *ErrorChain {
	return &ErrorChain{links: []link{{err: err, msg: message}}}
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return NewWithMessage(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	if err != nil {
		ec.links = append(ec.links, link{err: err})
	}

	return ec
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, 0, len(ec.links))

	for _, l := range ec.links {
		if len(l.msg) == 0 {
			parts = append(parts, l.err.Error())
		} else {
			parts = append(parts, l.err.Error()+": "+l.msg)
		}
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) Unwrap() []error {
	return ec.Errors()
}

func (ec *ErrorChain) Errors() []error {
	errs := make([]error, len(ec.links))

	for idx, l := range ec.links {
		errs[idx] = l.err
	}

	return errs
}

// Code is the lower camel case rendition of the leading error.
func (ec *ErrorChain) Code() string {
	if len(ec.links) == 0 {
		return ""
	}

	return strcase.ToLowerCamel(ec.links[0].err.Error())
}

// Message is the message attached to the leading error.
func (ec *ErrorChain) Message() string {
	if len(ec.links) == 0 {
		return ""
	}

	return ec.links[0].msg
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(message{Code: ec.Code(), Message: ec.Message()})
}

// From returns the ErrorChain err is or wraps.
func From(err error) (*ErrorChain, bool) {
	var chain *ErrorChain

	ok := errors.As(err, &chain)

	return chain, ok
}
