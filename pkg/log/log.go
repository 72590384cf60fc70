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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/randselect/pkg/plan"
)

// 🎯 Logger renders transfer plans on the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	lines   int
}

// 🏭 New creates a new logger writing preview lines to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatLine colours a preview line: additions green, removals red
func (l *Logger) formatLine(line plan.Line) string {
	c := color.New(color.FgGreen)
	if line.Marker == plan.MarkerRemove {
		c = color.New(color.FgRed)
	}
	return fmt.Sprintf("%s %s", c.Sprint(string(line.Marker)), c.Sprint(line.Path))
}

// 📝 Preview prints every line of a plan preview
func (l *Logger) Preview(ctx context.Context, lines []plan.Line) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range lines {
		fmt.Fprintln(l.console, l.formatLine(line))
		l.lines++

		l.zlog.Debug().
			Str("marker", string(line.Marker)).
			Str("path", line.Path).
			Msg("preview")
	}
}

// 📝 Hint prints a trailing hint after the preview
func (l *Logger) Hint(ctx context.Context, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, color.New(color.Faint).Sprint(msg))
	l.lines++
	l.zlog.Info().Msg(msg)
}

// Lines returns how many lines have been printed so far.
func (l *Logger) Lines() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lines
}
