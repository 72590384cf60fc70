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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/randselect/pkg/config"
)

const (
	envPrefix = "RANDSELECT"

	inFlagName      = "in"
	outFlagName     = "out"
	countFlagName   = "count"
	seedFlagName    = "seed"
	moveFlagName    = "move"
	goFlagName      = "go"
	noColorFlagName = "no-color"
	verboseFlagName = "verbose"
	configFlagName  = "config"
	includeFlagName = "include"
	excludeFlagName = "exclude"
	logFileFlagName = "log-file"
)

// newViper returns a viper instance reading RANDSELECT_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlagToConfig wires a cobra flag to a viper key so env and file values feed it.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(v.BindPFlag(key, flag))
}

// 📄 applyFileDefaults loads the config file, if any, and makes its values the
// viper defaults so flags and env still win over it.
func applyFileDefaults(cmd *cobra.Command, v *viper.Viper) error {
	base := config.Default()

	path := v.GetString(configFlagName)
	if path == "" {
		path = config.FindDefault(".")
	}
	if path != "" {
		loaded, err := config.LoadFile(cmd.Context(), path)
		if err != nil {
			return errors.Errorf("loading config file %s: %w", path, err)
		}
		base = loaded
	}

	v.SetDefault(inFlagName, base.Source)
	v.SetDefault(outFlagName, base.Destination)
	v.SetDefault(countFlagName, base.Count)
	v.SetDefault(moveFlagName, base.Move)
	v.SetDefault(includeFlagName, base.Include)
	v.SetDefault(excludeFlagName, base.Exclude)
	v.SetDefault(verboseFlagName, base.Verbosity)
	v.SetDefault(noColorFlagName, base.NoColor)
	v.SetDefault(logFileFlagName, base.LogFile)
	if base.Seed != nil {
		v.SetDefault(seedFlagName, strconv.FormatUint(*base.Seed, 10))
	}
	return nil
}

// 🎯 resolveConfig reads every setting out of viper, flag > env > file > default
func resolveConfig(v *viper.Viper) (*config.Config, error) {
	seed, err := config.ParseSeed(v.GetString(seedFlagName))
	if err != nil {
		return nil, errors.Errorf("parsing seed: %w", err)
	}

	return &config.Config{
		Source:      v.GetString(inFlagName),
		Destination: v.GetString(outFlagName),
		Count:       v.GetInt(countFlagName),
		Move:        v.GetBool(moveFlagName),
		Commit:      v.GetBool(goFlagName),
		Seed:        seed,
		Include:     v.GetStringSlice(includeFlagName),
		Exclude:     v.GetStringSlice(excludeFlagName),
		Verbosity:   v.GetInt(verboseFlagName),
		NoColor:     v.GetBool(noColorFlagName),
		LogFile:     v.GetString(logFileFlagName),
	}, nil
}
