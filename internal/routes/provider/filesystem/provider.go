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

package filesystem

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/rs/zerolog"

	"github.com/dadrus/radixroute/internal/config"
	"github.com/dadrus/radixroute/internal/radixroute"
	"github.com/dadrus/radixroute/internal/routes"
	"github.com/dadrus/radixroute/internal/routes/routeset"
	"github.com/dadrus/radixroute/internal/x/errorchain"
)

const sourcePrefix = "file_system:"

type provider struct {
	src       string
	watcher   *fsnotify.Watcher
	filter    glob.Glob
	parser    *routeset.Parser
	processor routes.SetProcessor
	l         zerolog.Logger
	done      chan struct{}
}

func newProvider(
	conf *config.FileSystemProviderConfig,
	processor routes.SetProcessor,
	logger zerolog.Logger,
) (*provider, error) {
	if len(conf.Src) == 0 {
		return nil, errorchain.
			NewWithMessage(radixroute.ErrConfiguration, "no src configured for file_system route provider")
	}

	absPath, err := filepath.Abs(conf.Src)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(radixroute.ErrInternal, "failed to get the absolute path for the configured src").
			CausedBy(err)
	}

	if _, err = os.Stat(absPath); err != nil {
		return nil, errorchain.
			NewWithMessage(radixroute.ErrConfiguration,
				"failed to get information about configured src from the file system").
			CausedBy(err)
	}

	parser, err := routeset.NewParser(conf.EnvVarsEnabled)
	if err != nil {
		return nil, errorchain.NewWithMessage(radixroute.ErrInternal, "failed creating route set parser").
			CausedBy(err)
	}

	var filter glob.Glob
	if len(conf.Pattern) != 0 {
		filter, err = glob.Compile(conf.Pattern)
		if err != nil {
			return nil, errorchain.
				NewWithMessagef(radixroute.ErrConfiguration, "invalid pattern %s", conf.Pattern).
				CausedBy(err)
		}
	}

	var watcher *fsnotify.Watcher
	if conf.Watch {
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return nil, errorchain.
				NewWithMessage(radixroute.ErrInternal, "failed instantiating new file watcher").
				CausedBy(err)
		}
	}

	return &provider{
		src:       absPath,
		watcher:   watcher,
		filter:    filter,
		parser:    parser,
		processor: processor,
		l:         logger,
		done:      make(chan struct{}),
	}, nil
}

func (p *provider) Start() error {
	p.l.Info().Str("_provider_type", "file_system").Msg("Starting route definitions provider")

	if err := p.loadInitialRouteSets(); err != nil {
		p.abort()

		return err
	}

	if p.watcher == nil {
		p.l.Warn().
			Msg("Watcher for file_system provider is not configured. Updates to routes will have no effects.")

		close(p.done)

		return nil
	}

	if err := p.watcher.Add(p.src); err != nil {
		p.l.Error().Err(err).Str("_provider_type", "file_system").
			Msg("Failed to start route definitions provider")

		p.abort()

		return err
	}

	go p.watchFiles()

	return nil
}

// abort releases the watcher if Start fails before watching began.
func (p *provider) abort() {
	if p.watcher != nil {
		_ = p.watcher.Close()
	}

	close(p.done)
}

func (p *provider) Stop() error {
	p.l.Info().Str("_provider_type", "file_system").Msg("Tearing down route definitions provider")

	if p.watcher == nil {
		return nil
	}

	err := p.watcher.Close()

	<-p.done

	return err
}

func (p *provider) watchFiles() {
	defer close(p.done)

	p.l.Debug().Msg("Watching route files for changes")

	for {
		select {
		case evt, ok := <-p.watcher.Events:
			if !ok {
				p.l.Debug().Msg("Watcher events channel closed")

				return
			}

			if !p.selected(evt.Name) {
				continue
			}

			p.l.Debug().
				Str("_event", evt.String()).
				Str("_file", evt.Name).
				Msg("Route update event received")

			switch {
			case evt.Has(fsnotify.Create), evt.Has(fsnotify.Write):
				p.routeSetUpdated(evt.Name)
			case evt.Has(fsnotify.Remove), evt.Has(fsnotify.Rename):
				p.routeSetDeleted(evt.Name)
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				p.l.Debug().Msg("Watcher error channel closed")

				return
			}

			p.l.Warn().Err(err).Msg("Watcher error received")
		}
	}
}

func (p *provider) routeSetUpdated(file string) {
	rs, err := p.loadRouteSet(file)
	if err != nil {
		p.l.Error().Err(err).Str("_file", file).Msg("Failed loading route set")

		return
	}

	if rs == nil {
		return
	}

	if err = p.processor.OnUpdated(rs); err != nil {
		p.l.Error().Err(err).Str("_src", rs.Source).Msg("Failed to apply route set changes")
	}
}

func (p *provider) routeSetDeleted(file string) {
	rs := &routeset.RouteSet{MetaData: routeset.MetaData{Source: sourcePrefix + file}}

	if err := p.processor.OnDeleted(rs); err != nil {
		p.l.Error().Err(err).Str("_src", rs.Source).Msg("Failed to apply route set changes")
	}
}

func (p *provider) loadInitialRouteSets() error {
	p.l.Info().Msg("Loading initial route sets")

	var sources []string

	fInfo, err := os.Stat(p.src)
	if err != nil {
		return err
	}

	if fInfo.IsDir() {
		dirEntries, err := os.ReadDir(p.src)
		if err != nil {
			return err
		}

		for _, entry := range dirEntries {
			path := filepath.Join(p.src, entry.Name())

			if entry.IsDir() {
				p.l.Warn().Str("_path", path).Msg("Ignoring directory")

				continue
			}

			if !p.selected(path) {
				p.l.Debug().Str("_path", path).Msg("Ignoring file not matching the pattern")

				continue
			}

			sources = append(sources, path)
		}
	} else {
		sources = append(sources, p.src)
	}

	for _, src := range sources {
		rs, err := p.loadRouteSet(src)
		if err != nil {
			p.l.Error().Err(err).Str("_file", src).Msg("Failed loading initial route set")

			return err
		}

		if rs == nil {
			continue
		}

		if err = p.processor.OnCreated(rs); err != nil {
			return err
		}
	}

	return nil
}

func (p *provider) selected(file string) bool {
	return p.filter == nil || file == p.src || p.filter.Match(filepath.Base(file))
}

// loadRouteSet returns nil without an error for files, which should be skipped.
func (p *provider) loadRouteSet(file string) (*routeset.RouteSet, error) {
	fInfo, err := os.Stat(file)
	if err != nil {
		return nil, err
	}

	if fInfo.IsDir() {
		return nil, nil //nolint:nilnil
	}

	if fInfo.Size() == 0 {
		p.l.Warn().Str("_file", file).Msg("File is empty")

		return nil, nil //nolint:nilnil
	}

	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer fh.Close()

	rs, err := p.parser.Parse(routeset.ContentTypeOf(file), fh)
	if err != nil {
		return nil, err
	}

	rs.Source = sourcePrefix + file
	rs.ModTime = fInfo.ModTime()

	return rs, nil
}
