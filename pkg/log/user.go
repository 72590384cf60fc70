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
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/walteh/randselect/pkg/status"
)

// 📢 UserLogger reports the result of a run in a user-friendly way
type UserLogger struct {
	log       zerolog.Logger // for debug/error logging
	formatter status.FileFormatter
	success   *pterm.PrefixPrinter
	info      *pterm.PrefixPrinter
	warning   *pterm.PrefixPrinter
	failure   *pterm.PrefixPrinter
}

// 🎯 NewUserLogger creates a new user logger writing to out
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		log:       *zerolog.Ctx(ctx),
		formatter: status.NewDefaultFileFormatter(),
		success:   pterm.Success.WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.Success.Prefix.Style}).WithWriter(out),
		info:      pterm.Info.WithPrefix(pterm.Prefix{Text: "📦", Style: pterm.Info.Prefix.Style}).WithWriter(out),
		warning:   pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️", Style: pterm.Warning.Prefix.Style}).WithWriter(out),
		failure:   pterm.Error.WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style}).WithWriter(out),
	}
}

// 📝 LogOutcome prints one action result
func (u *UserLogger) LogOutcome(o status.Outcome) {
	msg := u.formatter.FormatOutcome(o)
	switch o.State {
	case status.StateCopied, status.StateDeleted:
		u.success.Println(msg)
		u.log.Info().Str("source", o.Action.Source.Path).Str("destination", o.Action.Destination).Str("state", o.State.String()).Msg("transferred")
	case status.StateKept:
		u.warning.Println(msg)
		u.log.Error().Err(o.Err).Str("source", o.Action.Source.Path).Str("stage", string(o.Stage)).Msg("source kept after copy")
	case status.StateFailed:
		u.failure.Println(msg)
		u.log.Error().Err(o.Err).Str("source", o.Action.Source.Path).Str("stage", string(o.Stage)).Msg("transfer failed")
	default:
		u.log.Debug().Str("source", o.Action.Source.Path).Msg(msg)
	}
}

// 📊 LogReport prints every committed outcome followed by the totals.
// Dry runs print nothing: the preview already said it all.
func (u *UserLogger) LogReport(r *status.Report) {
	if r == nil || !r.Committed {
		return
	}
	for _, o := range r.Outcomes {
		u.LogOutcome(o)
	}

	summary := u.formatter.FormatSummary(r)
	if len(r.Failed()) > 0 {
		u.warning.Println(summary)
		u.log.Warn().Int("failed", len(r.Failed())).Int("total", len(r.Outcomes)).Msg(summary)
		return
	}
	u.info.Println(summary)
	u.log.Info().Int("total", len(r.Outcomes)).Msg(summary)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		u.success.Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		u.failure.Println(description + ": " + err.Error())
		u.log.Error().Err(err).Msg(description)
		return
	}
	u.warning.Println(description)
	u.log.Warn().Msg(description)
}
