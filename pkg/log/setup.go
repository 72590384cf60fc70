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
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrAlreadyConfigured is returned by a second call to Setup.
var ErrAlreadyConfigured = errors.New("logging already configured")

// 🔧 Options configures the process logger
type Options struct {
	Verbosity int       // 0 warn, 1 info, 2 debug, 3+ trace
	NoColor   bool      // Plain console output
	File      string    // Optional rotated JSON log file
	Stderr    io.Writer // Console destination, os.Stderr when nil
}

var (
	setupMu  sync.Mutex
	current  *zerolog.Logger
	fileSink *lumberjack.Logger
)

// LevelForVerbosity maps the -v count to a zerolog level.
func LevelForVerbosity(v int) zerolog.Level {
	switch {
	case v <= 0:
		return zerolog.WarnLevel
	case v == 1:
		return zerolog.InfoLevel
	case v == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// NoColorRequested reports whether colour should be off, honouring NO_COLOR.
func NoColorRequested(flag bool) bool {
	return flag || os.Getenv("NO_COLOR") != ""
}

// ConsoleWriter is the human-readable stderr sink shared by every logger the
// command creates.
func ConsoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, NoColor: noColor}
}

// 🖥️ NewConsoleLogger returns a console-only logger at level. It serves the
// command before Setup has run and when Setup never runs at all.
func NewConsoleLogger(out io.Writer, noColor bool, level zerolog.Level) zerolog.Logger {
	return zerolog.New(ConsoleWriter(out, noColor)).Level(level).With().Timestamp().Logger()
}

// 🏗️ Setup builds the process logger once. Later calls leave the first
// configuration in place and return it together with ErrAlreadyConfigured.
func Setup(opts Options) (zerolog.Logger, error) {
	setupMu.Lock()
	defer setupMu.Unlock()

	if current != nil {
		return *current, ErrAlreadyConfigured
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	writers := []io.Writer{ConsoleWriter(stderr, opts.NoColor)}
	if opts.File != "" {
		fileSink = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		writers = append(writers, fileSink)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(LevelForVerbosity(opts.Verbosity)).
		With().Timestamp().Logger()

	if opts.NoColor {
		color.NoColor = true
		pterm.DisableColor()
	}

	zerolog.DefaultContextLogger = &logger
	current = &logger
	return logger, nil
}

// Close flushes and closes the log file opened by Setup, if any.
func Close() error {
	setupMu.Lock()
	defer setupMu.Unlock()

	if fileSink == nil {
		return nil
	}
	err := fileSink.Close()
	fileSink = nil
	if err != nil {
		return errors.Errorf("closing log file: %w", err)
	}
	return nil
}

// reset forgets the configured logger so tests can call Setup again.
func reset() {
	setupMu.Lock()
	defer setupMu.Unlock()
	if fileSink != nil {
		_ = fileSink.Close()
	}
	current = nil
	fileSink = nil
	zerolog.DefaultContextLogger = nil
}
