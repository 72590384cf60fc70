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
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/randselect/pkg/config"
	"github.com/walteh/randselect/pkg/plan"
	"github.com/walteh/randselect/pkg/selection"
	"github.com/walteh/randselect/pkg/status"
)

// 🏃 Runner drives one run: validate, list, sample, plan, execute
type Runner struct {
	executor *Executor
	rng      selection.Rand
}

// 🏗️ NewRunner creates a new runner around an executor
func NewRunner(executor *Executor) *Runner {
	return &Runner{
		executor: executor,
	}
}

// WithRand makes the runner sample with rng instead of building one from
// the configured seed.
func (r *Runner) WithRand(rng selection.Rand) *Runner {
	r.rng = rng
	return r
}

// 🏃 Run executes the whole pipeline for cfg. Validation and listing errors
// return before anything is rendered and with a nil report.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*status.Report, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("config", cfg.String()).Msg("starting run")

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	if err := selection.Validate(cfg.Source, cfg.Destination); err != nil {
		return nil, errors.Errorf("validating paths: %w", err)
	}

	candidates, err := selection.List(ctx, cfg.Source, cfg.Filter())
	if err != nil {
		return nil, errors.Errorf("listing candidates: %w", err)
	}

	rng := r.rng
	if rng == nil {
		rng = selection.NewRand(cfg.Seed)
	}

	logger.Debug().Int("candidates", len(candidates)).Int("count", cfg.Count).Msg("sampling")
	selected := selection.Sample(rng, candidates, cfg.Count)

	p := plan.Build(selected, cfg.Destination, cfg.Move)

	report, err := r.executor.Execute(ctx, p, cfg.Commit)
	if err != nil {
		return report, errors.Errorf("executing plan: %w", err)
	}
	return report, nil
}
