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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/randselect/pkg/selection"
)

// 📁 DefaultFiles are looked up in the working directory when no config file is given
var DefaultFiles = []string{".randselect.yaml", ".randselect.yml", ".randselect.json", ".randselect.hcl"}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses a config file from bytes
	Parse(ctx context.Context, data []byte) (*File, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is the complete configuration of one run
type Config struct {
	Source      string   // Directory to select from
	Destination string   // Directory to copy or move into, created on commit
	Count       int      // Number of files to select
	Move        bool     // Delete sources after copying
	Commit      bool     // Write to the filesystem; false is a dry run
	Seed        *uint64  // Nil seeds from entropy
	Include     []string // Glob patterns a candidate name must match
	Exclude     []string // Glob patterns that drop a candidate

	Verbosity int    // 0 warn, 1 info, 2 debug, 3+ trace
	NoColor   bool   // Disable coloured output
	LogFile   string // Optional rotated log file
}

// 🏭 Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Count: 1,
	}
}

// 📄 File is what a config file may set. Unset fields keep their current value.
// Commit is absent: only the command line can confirm a run.
type File struct {
	Source      *string  `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional"`
	Destination *string  `json:"destination,omitempty" yaml:"destination,omitempty" hcl:"destination,optional"`
	Count       *int     `json:"count,omitempty" yaml:"count,omitempty" hcl:"count,optional"`
	Move        *bool    `json:"move,omitempty" yaml:"move,omitempty" hcl:"move,optional"`
	Seed        *uint64  `json:"seed,omitempty" yaml:"seed,omitempty" hcl:"seed,optional"`
	Include     []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude     []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Verbosity   *int     `json:"verbosity,omitempty" yaml:"verbosity,omitempty" hcl:"verbosity,optional"`
	NoColor     *bool    `json:"no_color,omitempty" yaml:"no_color,omitempty" hcl:"no_color,optional"`
	LogFile     *string  `json:"log_file,omitempty" yaml:"log_file,omitempty" hcl:"log_file,optional"`
}

// Apply copies every field set in f onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.Source != nil {
		cfg.Source = *f.Source
	}
	if f.Destination != nil {
		cfg.Destination = *f.Destination
	}
	if f.Count != nil {
		cfg.Count = *f.Count
	}
	if f.Move != nil {
		cfg.Move = *f.Move
	}
	if f.Seed != nil {
		seed := *f.Seed
		cfg.Seed = &seed
	}
	if f.Include != nil {
		cfg.Include = append([]string{}, f.Include...)
	}
	if f.Exclude != nil {
		cfg.Exclude = append([]string{}, f.Exclude...)
	}
	if f.Verbosity != nil {
		cfg.Verbosity = *f.Verbosity
	}
	if f.NoColor != nil {
		cfg.NoColor = *f.NoColor
	}
	if f.LogFile != nil {
		cfg.LogFile = *f.LogFile
	}
}

// 🎯 LoadFile reads path and applies it on top of Default
func LoadFile(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	file, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg := Default()
	file.Apply(cfg)
	return cfg, nil
}

// 🔎 FindDefault returns the first default config file present in dir, or ""
func FindDefault(dir string) string {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Source) == "" {
		return errors.Errorf("%w: source directory is required", selection.ErrInvalidInput)
	}
	if strings.TrimSpace(cfg.Destination) == "" {
		return errors.Errorf("%w: destination directory is required", selection.ErrInvalidInput)
	}
	if cfg.Count < 0 {
		return errors.Errorf("%w: count must not be negative, got %d", selection.ErrInvalidInput, cfg.Count)
	}
	if err := cfg.Filter().Validate(); err != nil {
		return errors.Errorf("validating patterns: %w", err)
	}
	return nil
}

// Filter returns the candidate filter described by the config.
func (cfg *Config) Filter() selection.Filter {
	return selection.Filter{Include: cfg.Include, Exclude: cfg.Exclude}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "copy"
	if cfg.Move {
		mode = "move"
	}
	run := "dry-run"
	if cfg.Commit {
		run = "commit"
	}
	seed := "random"
	if cfg.Seed != nil {
		seed = strconv.FormatUint(*cfg.Seed, 10)
	}
	return fmt.Sprintf("%s -> %s (%s %d, seed %s, %s)", cfg.Source, cfg.Destination, mode, cfg.Count, seed, run)
}

// 🎲 ParseSeed parses a decimal uint64 seed. An empty string means no seed.
func ParseSeed(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, errors.Errorf("%w: seed must be an unsigned 64-bit integer: %q", selection.ErrInvalidInput, s)
	}
	return &v, nil
}
