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
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🚫 Errors returned while validating and listing the source directory.
var (
	// ErrInvalidInput is the parent of every validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotADirectory means the source does not exist or is not a directory.
	ErrNotADirectory = errors.Errorf("%w: source is not a directory", ErrInvalidInput)
	// ErrSamePath means source and destination resolve to the same location.
	ErrSamePath = errors.Errorf("%w: source and destination are the same", ErrInvalidInput)
	// ErrIO wraps failures reading the source directory.
	ErrIO = errors.New("i/o error")
)

// 🔍 Validate checks that source is an existing directory and that destination
// does not point at it. The destination does not need to exist.
func Validate(source, destination string) error {
	if samePath(source, destination) {
		return errors.Errorf("%w: %s == %s", ErrSamePath, source, destination)
	}

	info, err := os.Stat(source)
	if err != nil {
		return errors.Errorf("%w: %s: %v", ErrNotADirectory, source, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%w: %s", ErrNotADirectory, source)
	}

	return nil
}

// samePath compares canonical paths when both exist and falls back to the
// cleaned absolute form of the paths as given otherwise.
func samePath(a, b string) bool {
	ca, errA := canonical(a)
	cb, errB := canonical(b)
	if errA == nil && errB == nil {
		return ca == cb
	}
	return absClean(a) == absClean(b)
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func absClean(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
