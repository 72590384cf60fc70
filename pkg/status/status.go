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

package status

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/randselect/pkg/plan"
)

// 📊 State is where an action ended up
type State int

const (
	StatePlanned State = iota // Not attempted (dry run)
	StateCopied               // Copy succeeded, final state for copies
	StateDeleted              // Copy and source delete succeeded, final state for moves
	StateKept                 // Copy succeeded but the source could not be deleted
	StateFailed               // Nothing was written for this action
)

// String returns a string representation of State
func (s State) String() string {
	switch s {
	case StatePlanned:
		return "planned"
	case StateCopied:
		return "copied"
	case StateDeleted:
		return "moved"
	case StateKept:
		return "kept"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 🚧 Stage names the step of an action that failed
type Stage string

const (
	StageNone      Stage = ""
	StageCreateDir Stage = "create-dir"
	StageCopy      Stage = "copy"
	StageDelete    Stage = "delete"
)

// 📄 Outcome is the result of one planned action
type Outcome struct {
	Action plan.Action
	State  State
	Stage  Stage // Set only when Err is set
	Err    error
}

// Succeeded reports whether the action finished without error.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// 📈 Report collects outcomes in plan order
type Report struct {
	Committed bool
	Move      bool
	Outcomes  []Outcome
}

// NewReport starts a report with every action planned.
func NewReport(p plan.Plan, committed bool) *Report {
	outcomes := make([]Outcome, 0, len(p.Actions))
	for _, a := range p.Actions {
		outcomes = append(outcomes, Outcome{Action: a, State: StatePlanned})
	}
	return &Report{
		Committed: committed,
		Move:      p.Move,
		Outcomes:  outcomes,
	}
}

// Count returns how many outcomes are in state s.
func (r *Report) Count(s State) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == s {
			n++
		}
	}
	return n
}

// Failed returns the outcomes that carry an error.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			out = append(out, o)
		}
	}
	return out
}

// Errors joins the error of every failed outcome, or returns nil.
func (r *Report) Errors() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
