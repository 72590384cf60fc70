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

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/randselect/pkg/log"
	"github.com/walteh/randselect/pkg/operation"
)

const rootLongDescription = `randselect picks a random subset of the regular files in a directory and
copies (or moves) them into another directory.

By default nothing is written: randselect prints what it would do, one
"++ <path>" line per file it would create and, when moving, one "-- <path>"
line per file it would remove. Pass --go to apply the changes.

Every flag can also be set through a RANDSELECT_<FLAG> environment variable
(dashes become underscores) or a .randselect.{yaml,yml,json,hcl} config file.`

// 🏗️ newRootCmd builds the randselect command writing to stdout and stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:           "randselect",
		Short:         "Copy or move a random selection of files",
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyFileDefaults(cmd, v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, v, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(FormatVersion())

	configureRootFlags(cmd, v)
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

func configureRootFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()

	flags.StringP(inFlagName, "i", "", "source directory to select files from")
	bindFlagToConfig(v, flags.Lookup(inFlagName), inFlagName)

	flags.StringP(outFlagName, "o", "", "destination directory, created when --go is set")
	bindFlagToConfig(v, flags.Lookup(outFlagName), outFlagName)

	flags.IntP(countFlagName, "n", 1, "number of files to select")
	bindFlagToConfig(v, flags.Lookup(countFlagName), countFlagName)

	flags.StringP(seedFlagName, "s", "", "unsigned 64-bit seed for a reproducible selection")
	bindFlagToConfig(v, flags.Lookup(seedFlagName), seedFlagName)

	flags.BoolP(moveFlagName, "m", false, "move files instead of copying them")
	bindFlagToConfig(v, flags.Lookup(moveFlagName), moveFlagName)

	flags.BoolP(goFlagName, "g", false, "write the changes to the filesystem")
	bindFlagToConfig(v, flags.Lookup(goFlagName), goFlagName)

	flags.BoolP(noColorFlagName, "c", false, "disable coloured output (also NO_COLOR)")
	bindFlagToConfig(v, flags.Lookup(noColorFlagName), noColorFlagName)

	flags.CountP(verboseFlagName, "v", "increase log verbosity (repeatable)")
	bindFlagToConfig(v, flags.Lookup(verboseFlagName), verboseFlagName)

	flags.String(configFlagName, "", "config file (default .randselect.{yaml,yml,json,hcl} when present)")
	bindFlagToConfig(v, flags.Lookup(configFlagName), configFlagName)

	flags.StringSlice(includeFlagName, nil, "only select names matching these glob patterns")
	bindFlagToConfig(v, flags.Lookup(includeFlagName), includeFlagName)

	flags.StringSlice(excludeFlagName, nil, "never select names matching these glob patterns")
	bindFlagToConfig(v, flags.Lookup(excludeFlagName), excludeFlagName)

	flags.String(logFileFlagName, "", "also write JSON logs to this file, rotated by size")
	bindFlagToConfig(v, flags.Lookup(logFileFlagName), logFileFlagName)
}

// 🏃 runRoot resolves the configuration, sets up logging and runs the pipeline
func runRoot(cmd *cobra.Command, v *viper.Viper, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(v)
	if err != nil {
		return err
	}

	zlog, err := log.Setup(log.Options{
		Verbosity: cfg.Verbosity,
		NoColor:   log.NoColorRequested(cfg.NoColor),
		File:      cfg.LogFile,
		Stderr:    stderr,
	})
	if err != nil && !errors.Is(err, log.ErrAlreadyConfigured) {
		return errors.Errorf("setting up logging: %w", err)
	}

	ctx := zlog.WithContext(cmd.Context())
	renderer := log.New(stdout, zlog)

	exec, err := operation.NewExecutor(operation.Options{Renderer: renderer})
	if err != nil {
		return errors.Errorf("creating executor: %w", err)
	}

	report, err := operation.NewRunner(exec).Run(ctx, cfg)
	log.NewUserLogger(ctx, stdout).LogReport(report)
	if err != nil {
		return err
	}
	return nil
}
