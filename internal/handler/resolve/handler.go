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

package resolve

import (
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/radixroute/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/radixroute/internal/metadata"
	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/routes"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

//nolint:gochecknoglobals
var supportedMediaTypes = []contenttype.MediaType{
	contenttype.NewMediaType("application/json"),
	contenttype.NewMediaType("application/yaml"),
}

type resolution struct {
	Static     bool              `json:"static"     yaml:"static"`
	Metadata   *metadata.Store   `json:"metadata"   yaml:"metadata"`
	Parameters map[string]string `json:"parameters" yaml:"parameters"`
}

type handler struct {
	r  routes.Repository
	eh errorhandler.ErrorHandler
}

func newHandler(repo routes.Repository, eh errorhandler.ErrorHandler) http.Handler {
	return &handler{r: repo, eh: eh}
}

func (h *handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	mediaType, _, err := contenttype.GetAcceptableMediaType(req, supportedMediaTypes)
	if err != nil {
		h.eh.HandleError(rw, req, errorchain.NewWithMessage(radixroute.ErrNotAcceptable,
			"can only respond with application/json or application/yaml").CausedBy(err))

		return
	}

	route, err := h.r.Resolve(req.URL.Path)
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	res := resolution{Static: route.Static, Metadata: route.Metadata, Parameters: route.Parameters}
	if res.Parameters == nil {
		res.Parameters = map[string]string{}
	}

	var body []byte

	if mediaType.Subtype == "yaml" {
		body, err = yaml.Marshal(res)
	} else {
		body, err = json.Marshal(res)
	}

	if err != nil {
		h.eh.HandleError(rw, req, errorchain.NewWithMessage(radixroute.ErrInternal,
			"failed rendering resolution").CausedBy(err))

		return
	}

	rw.Header().Set("Content-Type", mediaType.String())
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(body)
}
