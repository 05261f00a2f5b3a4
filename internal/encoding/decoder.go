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

package encoding

import (
	"bytes"
	"io"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/x"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

// Decoder turns JSON or YAML documents into values of T. Documents are parsed
// into a generic map first and mapped onto T afterward.
type Decoder[T any] struct {
	decoderOpts
}

func NewDecoder[T any](opts ...DecoderOption) *Decoder[T] {
	decoder := &Decoder[T]{
		decoderOpts: decoderOpts{
			contentType: ContentTypeYAML,
			validator:   noopValidator{},
			tagName:     "json",
		},
	}

	for _, opt := range opts {
		opt(&decoder.decoderOpts)
	}

	return decoder
}

func (d *Decoder[T]) Decode(reader io.Reader) (T, error) {
	var res T

	if d.contentType != ContentTypeJSON && d.contentType != ContentTypeYAML {
		return res, errorchain.NewWithMessagef(radixroute.ErrUnsupportedType,
			"cannot decode %s documents", d.contentType)
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return res, errorchain.NewWithMessage(radixroute.ErrInternal, "reading document failed").
			CausedBy(err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return res, errorchain.NewWithMessage(radixroute.ErrArgument, "empty document").CausedBy(io.EOF)
	}

	if d.substituteEnvVars {
		content, err := envsubst.EvalEnv(string(raw))
		if err != nil {
			return res, errorchain.NewWithMessage(radixroute.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		raw = []byte(content)
	}

	rawDoc, err := d.parse(raw)
	if err != nil {
		return res, errorchain.NewWithMessage(radixroute.ErrConfiguration,
			"parsing of document failed").CausedBy(err)
	}

	if err = d.DecodeMap(&res, rawDoc); err != nil {
		return res, err
	}

	return res, nil
}

// DecodeMap maps an already parsed document onto out and validates the result.
func (d *Decoder[T]) DecodeMap(out *T, in map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: d.errorOnUnused,
		TagName:     d.tagName,
		DecodeHook: x.IfThenElse(d.decodeHooks != nil,
			d.decodeHooks, mapstructure.ComposeDecodeHookFunc()),
	})
	if err != nil {
		return errorchain.NewWithMessage(radixroute.ErrInternal,
			"failed creating document decoder").CausedBy(err)
	}

	if err = dec.Decode(in); err != nil {
		return errorchain.NewWithMessage(radixroute.ErrConfiguration,
			"decoding of document failed").CausedBy(err)
	}

	if err = d.validator.ValidateStruct(out); err != nil {
		return errorchain.NewWithMessage(radixroute.ErrConfiguration,
			"document validation failed").CausedBy(err)
	}

	return nil
}

func (d *Decoder[T]) parse(raw []byte) (map[string]any, error) {
	var doc map[string]any

	if d.contentType == ContentTypeJSON {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()

		return doc, dec.Decode(&doc)
	}

	return doc, yaml.Unmarshal(raw, &doc)
}
