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

// Package plan turns a selection into an ordered list of transfer actions.
package plan

import (
	"path/filepath"

	"github.com/walteh/randselect/pkg/selection"
)

// 🏷️ Marker prefixes a preview line
type Marker string

const (
	MarkerAdd    Marker = "++" // Destination that will be written
	MarkerRemove Marker = "--" // Source that will be removed by a move
)

// 📝 Line is one preview entry. Rendering (colour, layout) is left to the caller.
type Line struct {
	Marker Marker
	Path   string
}

// String returns the uncoloured form of the line.
func (l Line) String() string {
	return string(l.Marker) + " " + l.Path
}

// 📦 Action moves or copies one candidate to its destination path
type Action struct {
	Source      selection.Candidate
	Destination string
}

// 📋 Plan is the ordered set of actions for one run
type Plan struct {
	Destination string   // Destination directory
	Move        bool     // Delete sources after a successful copy
	Actions     []Action // Post-shuffle order
}

// 🏭 Build pairs each selected candidate with destination/name.
func Build(selected []selection.Candidate, destination string, move bool) Plan {
	actions := make([]Action, 0, len(selected))
	for _, c := range selected {
		actions = append(actions, Action{
			Source:      c,
			Destination: filepath.Join(destination, c.Name),
		})
	}
	return Plan{
		Destination: destination,
		Move:        move,
		Actions:     actions,
	}
}

// Len returns the number of actions.
func (p Plan) Len() int {
	return len(p.Actions)
}

// 👀 Preview returns the removal (moves only) and addition lines for every
// action, in plan order.
func (p Plan) Preview() []Line {
	lines := make([]Line, 0, len(p.Actions)*2)
	for _, a := range p.Actions {
		if p.Move {
			lines = append(lines, Line{Marker: MarkerRemove, Path: a.Source.Path})
		}
		lines = append(lines, Line{Marker: MarkerAdd, Path: a.Destination})
	}
	return lines
}
