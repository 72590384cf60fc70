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
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/walteh/randselect/pkg/log"
)

func main() {
	bootstrap := log.NewConsoleLogger(os.Stderr, log.NoColorRequested(false), zerolog.WarnLevel)
	ctx := bootstrap.WithContext(context.Background())

	cmd := newRootCmd(os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(ctx)
	if cerr := log.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		// honour -v and --no-color when the run got far enough to set them
		if configured := zerolog.DefaultContextLogger; configured != nil {
			ctx = configured.WithContext(ctx)
		}
		log.NewUserLogger(ctx, os.Stderr).LogValidation(false, "randselect failed", err)
		os.Exit(1)
	}
}
