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

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{5, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestNoColorRequested(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, NoColorRequested(false))
	assert.True(t, NoColorRequested(true))

	t.Setenv("NO_COLOR", "1")
	assert.True(t, NoColorRequested(false), "NO_COLOR wins over the flag")
}

func TestNewConsoleLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, true, zerolog.WarnLevel)

	logger.Info().Msg("hidden below warn")
	logger.Error().Str("path", "/in").Msg("listing failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden below warn")
	assert.Contains(t, out, "listing failed")
	assert.Contains(t, out, "path=/in")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "console output must not be JSON")
	assert.NotContains(t, out, "\x1b[", "no colour when disabled")
}

func TestSetupOnce(t *testing.T) {
	reset()
	t.Cleanup(reset)

	buf := &bytes.Buffer{}
	logger, err := Setup(Options{Verbosity: 1, Stderr: buf, NoColor: true})
	require.NoError(t, err)
	defer func() {
		color.NoColor = false
		pterm.EnableColor()
	}()

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	assert.True(t, color.NoColor, "no-color should reach fatih/color")
	assert.NotNil(t, zerolog.DefaultContextLogger, "context logger default should be set")

	logger.Info().Msg("hello")
	logger.Debug().Msg("hidden")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "hidden")

	// A second call keeps the first configuration
	again, err := Setup(Options{Verbosity: 3})
	require.ErrorIs(t, err, ErrAlreadyConfigured)
	assert.Equal(t, zerolog.InfoLevel, again.GetLevel())
}

func TestSetupLogFile(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := filepath.Join(t.TempDir(), "randselect.log")
	logger, err := Setup(Options{Verbosity: 2, File: path, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)

	logger.Debug().Str("k", "v").Msg("to file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Contains(t, string(data), `"k":"v"`)

	assert.NoError(t, Close(), "closing twice is a no-op")
}
