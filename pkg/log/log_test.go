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
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/randselect/pkg/plan"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "preview_copy",
			op: func(t *testing.T, logger *Logger) {
				logger.Preview(context.Background(), []plan.Line{
					{Marker: plan.MarkerAdd, Path: "/out/a.txt"},
					{Marker: plan.MarkerAdd, Path: "/out/b.txt"},
				})
			},
			wantLogs: []string{
				"++ /out/a.txt",
				"++ /out/b.txt",
			},
		},
		{
			name: "preview_move",
			op: func(t *testing.T, logger *Logger) {
				logger.Preview(context.Background(), []plan.Line{
					{Marker: plan.MarkerRemove, Path: "/in/a.txt"},
					{Marker: plan.MarkerAdd, Path: "/out/a.txt"},
				})
			},
			wantLogs: []string{
				"-- /in/a.txt",
				"++ /out/a.txt",
			},
		},
		{
			name: "preview_then_hint",
			op: func(t *testing.T, logger *Logger) {
				logger.Preview(context.Background(), []plan.Line{{Marker: plan.MarkerAdd, Path: "/out/a.txt"}})
				logger.Hint(context.Background(), "run again with --go")
			},
			wantLogs: []string{
				"++ /out/a.txt",
				"run again with --go",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, lines[i], "log line %d should match", i)
			}
			assert.Equal(t, len(tt.wantLogs), logger.Lines())
		})
	}
}

func TestLoggerColor(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = false }()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Nop())
	logger.Preview(context.Background(), []plan.Line{
		{Marker: plan.MarkerRemove, Path: "/in/a.txt"},
		{Marker: plan.MarkerAdd, Path: "/out/a.txt"},
	})

	out := buf.String()
	assert.Contains(t, out, "\x1b[31m--", "removals should be red")
	assert.Contains(t, out, "\x1b[32m++", "additions should be green")
}

