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

package parser

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

func New(opts ...Option) ConfigLoader {
	loader := &configLoader{o: defaultOptions()}

	for _, opt := range opts {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

// Load populates config from the values it already holds (the defaults), the config
// file if one is present and the environment variables, each overriding the former.
func (c *configLoader) Load(config any) error {
	configFile, err := c.configFile()
	if err != nil {
		return err
	}

	konf, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	if len(configFile) != 0 {
		content, err := c.readConfigFile(configFile)
		if err != nil {
			return err
		}

		if c.o.validate != nil {
			if err = c.o.validate(bytes.NewReader(content)); err != nil {
				return err
			}
		}

		fileKonf, err := koanfFromYaml(configFile, content)
		if err != nil {
			return err
		}

		if err = konf.Merge(fileKonf); err != nil {
			return errorchain.NewWithMessage(radixroute.ErrConfiguration,
				"failed to merge config file").CausedBy(err)
		}
	}

	envKonf, err := koanfFromEnv(c.o.envPrefix)
	if err != nil {
		return err
	}

	if err = konf.Merge(envKonf); err != nil {
		return errorchain.NewWithMessage(radixroute.ErrConfiguration,
			"failed to merge environment variables").CausedBy(err)
	}

	if err = konf.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Result:           config,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return errorchain.NewWithMessage(radixroute.ErrConfiguration,
			"failed to decode configuration").CausedBy(err)
	}

	return nil
}

func (c *configLoader) readConfigFile(configFile string) ([]byte, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errorchain.NewWithMessagef(radixroute.ErrConfiguration,
			"failed to read config file %s", configFile).CausedBy(err)
	}

	if !c.o.substituteEnvVars {
		return content, nil
	}

	return substituteEnvVars(configFile, content)
}

func (c *configLoader) configFile() (string, error) {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return "", errorchain.NewWithMessagef(radixroute.ErrConfiguration,
				"config file %s is not accessible", c.o.configFile).CausedBy(err)
		}

		return c.o.configFile, nil
	}

	for _, confDir := range c.o.configLookupDirs {
		filePath := filepath.Join(confDir, c.o.defaultConfigFileName)
		if _, err := os.Stat(filePath); err == nil {
			return filePath, nil
		}
	}

	return "", nil
}
