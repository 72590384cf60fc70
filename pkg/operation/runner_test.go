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

package operation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/randselect/pkg/config"
	"github.com/walteh/randselect/pkg/operation"
	"github.com/walteh/randselect/pkg/plan"
	"github.com/walteh/randselect/pkg/selection"
	"github.com/walteh/randselect/pkg/status"
)

// zeroRand always picks index 0, which turns a, b, c into b, c, a
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func setupSource(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0o644))
	}
	return dir
}

func newRunner(t *testing.T) (*operation.Runner, *recordingRenderer) {
	t.Helper()
	renderer := &recordingRenderer{}
	exec, err := operation.NewExecutor(operation.Options{Renderer: renderer})
	require.NoError(t, err)
	return operation.NewRunner(exec).WithRand(zeroRand{}), renderer
}

func TestRunCopy(t *testing.T) {
	ctx := testContext(t)
	src := setupSource(t, "a", "b", "c")
	dst := filepath.Join(t.TempDir(), "out")

	runner, renderer := newRunner(t)
	report, err := runner.Run(ctx, &config.Config{Source: src, Destination: dst, Count: 2, Commit: true})
	require.NoError(t, err)

	require.Len(t, renderer.previews, 1)
	assert.Equal(t, []plan.Line{
		{Marker: plan.MarkerAdd, Path: filepath.Join(dst, "b")},
		{Marker: plan.MarkerAdd, Path: filepath.Join(dst, "c")},
	}, renderer.previews[0])
	assert.Empty(t, renderer.hints)

	assert.Equal(t, 2, report.Count(status.StateCopied))
	for _, name := range []string{"b", "c"} {
		data, err := os.ReadFile(filepath.Join(dst, name))
		require.NoError(t, err)
		assert.Equal(t, "content of "+name, string(data))
		assert.FileExists(t, filepath.Join(src, name), "copy keeps the source")
	}
	assert.NoFileExists(t, filepath.Join(dst, "a"))
}

func TestRunMove(t *testing.T) {
	ctx := testContext(t)
	src := setupSource(t, "a", "b", "c")
	dst := filepath.Join(t.TempDir(), "out")

	runner, renderer := newRunner(t)
	report, err := runner.Run(ctx, &config.Config{Source: src, Destination: dst, Count: 1, Move: true, Commit: true})
	require.NoError(t, err)

	assert.Equal(t, []plan.Line{
		{Marker: plan.MarkerRemove, Path: filepath.Join(src, "b")},
		{Marker: plan.MarkerAdd, Path: filepath.Join(dst, "b")},
	}, renderer.previews[0])

	assert.Equal(t, 1, report.Count(status.StateDeleted))
	assert.NoFileExists(t, filepath.Join(src, "b"))
	assert.FileExists(t, filepath.Join(dst, "b"))
	assert.FileExists(t, filepath.Join(src, "a"))
	assert.FileExists(t, filepath.Join(src, "c"))
}

func TestRunDryRun(t *testing.T) {
	ctx := testContext(t)
	src := setupSource(t, "a", "b", "c")
	dst := filepath.Join(t.TempDir(), "out")

	runner, renderer := newRunner(t)
	report, err := runner.Run(ctx, &config.Config{Source: src, Destination: dst, Count: 3, Move: true})
	require.NoError(t, err)

	assert.Len(t, renderer.previews[0], 6)
	assert.Equal(t, []string{operation.DryRunHint}, renderer.hints)
	assert.Equal(t, 3, report.Count(status.StatePlanned))
	assert.NoDirExists(t, dst)
	for _, name := range []string{"a", "b", "c"} {
		assert.FileExists(t, filepath.Join(src, name))
	}
}

func TestRunCountZero(t *testing.T) {
	ctx := testContext(t)
	src := setupSource(t, "a", "b")
	dst := filepath.Join(t.TempDir(), "out")

	runner, renderer := newRunner(t)
	report, err := runner.Run(ctx, &config.Config{Source: src, Destination: dst, Count: 0})
	require.NoError(t, err)

	assert.Empty(t, renderer.previews[0])
	assert.Equal(t, []string{operation.DryRunHint}, renderer.hints)
	assert.Empty(t, report.Outcomes)
}

func TestRunCountExceedsCandidates(t *testing.T) {
	ctx := testContext(t)
	src := setupSource(t, "a", "b")
	dst := filepath.Join(t.TempDir(), "out")

	runner, _ := newRunner(t)
	report, err := runner.Run(ctx, &config.Config{Source: src, Destination: dst, Count: 10, Commit: true})
	require.NoError(t, err)
	assert.Len(t, report.Outcomes, 2)
	assert.FileExists(t, filepath.Join(dst, "a"))
	assert.FileExists(t, filepath.Join(dst, "b"))
}

func TestRunFilter(t *testing.T) {
	ctx := testContext(t)
	src := setupSource(t, "a.txt", "b.log", "c.txt")
	dst := filepath.Join(t.TempDir(), "out")

	runner, _ := newRunner(t)
	report, err := runner.Run(ctx, &config.Config{
		Source:      src,
		Destination: dst,
		Count:       10,
		Include:     []string{"*.txt"},
		Commit:      true,
	})
	require.NoError(t, err)
	assert.Len(t, report.Outcomes, 2)
	assert.NoFileExists(t, filepath.Join(dst, "b.log"))
}

func TestRunSeedIsReproducible(t *testing.T) {
	ctx := testContext(t)
	src := setupSource(t, "a", "b", "c", "d", "e", "f")
	seed := uint64(42)

	previews := make([][]plan.Line, 0, 2)
	for range 2 {
		renderer := &recordingRenderer{}
		exec, err := operation.NewExecutor(operation.Options{Renderer: renderer})
		require.NoError(t, err)
		_, err = operation.NewRunner(exec).Run(ctx, &config.Config{Source: src, Destination: "/out", Count: 3, Seed: &seed})
		require.NoError(t, err)
		previews = append(previews, renderer.previews[0])
	}
	assert.Equal(t, previews[0], previews[1])
}

func TestRunValidationErrors(t *testing.T) {
	src := setupSource(t, "a")
	file := filepath.Join(src, "a")

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr error
	}{
		{
			name:    "missing_source",
			cfg:     &config.Config{Source: filepath.Join(src, "nope"), Destination: filepath.Join(src, "out"), Count: 1},
			wantErr: selection.ErrNotADirectory,
		},
		{
			name:    "source_is_file",
			cfg:     &config.Config{Source: file, Destination: filepath.Join(src, "out"), Count: 1},
			wantErr: selection.ErrNotADirectory,
		},
		{
			name:    "same_path",
			cfg:     &config.Config{Source: src, Destination: src + string(filepath.Separator), Count: 1},
			wantErr: selection.ErrSamePath,
		},
		{
			name:    "empty_destination",
			cfg:     &config.Config{Source: src, Count: 1},
			wantErr: selection.ErrInvalidInput,
		},
		{
			name:    "negative_count",
			cfg:     &config.Config{Source: src, Destination: filepath.Join(src, "out"), Count: -1},
			wantErr: selection.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			tt.cfg.Commit = true
			runner, renderer := newRunner(t)

			report, err := runner.Run(ctx, tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, selection.ErrInvalidInput)
			assert.Nil(t, report)
			assert.Empty(t, renderer.previews, "nothing is rendered on invalid input")
			assert.NoDirExists(t, filepath.Join(src, "out"))
		})
	}
}
