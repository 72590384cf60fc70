// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package selection

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 Candidate is a regular file in the source directory that may be selected
type Candidate struct {
	Name string // Base name, unique within the source directory
	Path string // Source directory joined with Name
}

// 🎯 Filter narrows candidates by glob patterns matched against their names
type Filter struct {
	Include []string // Empty means every name is included
	Exclude []string // An exclude match always wins
}

// 🔍 Validate reports the first malformed pattern
func (f Filter) Validate() error {
	for _, p := range append(append([]string{}, f.Include...), f.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("%w: bad pattern %q", ErrInvalidInput, p)
		}
	}
	return nil
}

// Match reports whether name passes the filter.
func (f Filter) Match(name string) bool {
	for _, p := range f.Exclude {
		if ok, _ := doublestar.Match(p, name); ok {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, p := range f.Include {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// 📋 List returns the regular files directly inside dir, in directory-read
// order. Entries that cannot be probed are skipped, not reported.
func List(ctx context.Context, dir string, filter Filter) ([]Candidate, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("dir", dir).Msg("listing candidates")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("%w: reading %s: %v", ErrIO, dir, err)
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks: a link to a regular file is a candidate,
		// a link to a directory or a dangling link is not.
		info, err := os.Stat(path)
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping entry that cannot be probed")
			continue
		}
		if !info.Mode().IsRegular() {
			logger.Trace().Str("path", path).Str("mode", info.Mode().Type().String()).Msg("skipping non-regular entry")
			continue
		}
		if !filter.Match(entry.Name()) {
			logger.Debug().Str("path", path).Msg("skipping filtered entry")
			continue
		}

		candidates = append(candidates, Candidate{Name: entry.Name(), Path: path})
	}

	logger.Debug().Int("count", len(candidates)).Msg("listed candidates")
	return candidates, nil
}
