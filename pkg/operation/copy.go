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

package operation

import (
	"io"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileSystem is every mutation the executor performs
type FileSystem interface {
	// MkdirAll creates path and any missing parents; existing is fine
	MkdirAll(path string) error
	// CopyFile copies the contents and permission bits of src to dst
	CopyFile(src, dst string) error
	// Remove deletes a single file
	Remove(path string) error
}

// 🔧 OSFileSystem implements FileSystem on the local disk
type OSFileSystem struct{}

var _ FileSystem = OSFileSystem{}

func (OSFileSystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errors.Errorf("creating directory: %w", err)
	}
	return nil
}

func (OSFileSystem) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Errorf("deleting file: %w", err)
	}
	return nil
}

// CopyFile writes to a temporary file next to dst and renames it into place,
// so a failed copy never leaves a partial dst behind. An existing dst is
// replaced.
func (OSFileSystem) CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return errors.Errorf("reading source file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("source is not a regular file: %s", info.Mode().Type())
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, srcFile); err != nil {
		return errors.Errorf("copying file content: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
