// seehuhn.de/go/laser - vector graphics for laser projectors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package trace visualises the sample stream of a laser frame.
//
// The beam path can be rendered into an anti-aliased grayscale image, or
// written to a PDF file where lit strokes and blank moves are shown
// separately.  Device coordinates have their origin in the lower left
// corner.
package trace

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/laser"
)

// Summary describes the composition of a frame.
type Summary struct {
	Samples    int     `json:"samples"`     // total number of samples
	Lit        int     `json:"lit"`         // samples with the beam on
	Dwell      int     `json:"dwell"`       // samples repeating the previous position
	LitLength  float64 `json:"lit_length"`  // distance travelled with the beam on, in device units
	DarkLength float64 `json:"dark_length"` // distance travelled with the beam off, in device units
	MaxStepOn  float64 `json:"max_step_on"` // longest step between two lit samples
	MaxStepOff float64 `json:"max_step_off"`
}

// Summarize computes statistics for a sequence of samples.
func Summarize(samples []laser.Sample) Summary {
	s := Summary{Samples: len(samples)}
	for i, cur := range samples {
		if cur.Lit() {
			s.Lit++
		}
		if i == 0 {
			continue
		}
		prev := samples[i-1]
		if prev.X == cur.X && prev.Y == cur.Y {
			s.Dwell++
			continue
		}
		d := cur.Point().Sub(prev.Point()).Length()
		if prev.Lit() && cur.Lit() {
			s.LitLength += d
			s.MaxStepOn = math.Max(s.MaxStepOn, d)
		} else {
			s.DarkLength += d
			s.MaxStepOff = math.Max(s.MaxStepOff, d)
		}
	}
	return s
}

// run is a maximal sequence of consecutive samples with the same beam
// state.  The first point of a run is the last point of the previous run,
// so that runs join up.
type run struct {
	lit bool
	pts []vec.Vec2
}

// splitRuns splits the samples into lit and dark runs.
func splitRuns(samples []laser.Sample) []run {
	var runs []run
	for i, s := range samples {
		lit := s.Lit()
		if len(runs) == 0 || runs[len(runs)-1].lit != lit {
			r := run{lit: lit}
			if i > 0 {
				r.pts = append(r.pts, samples[i-1].Point())
			}
			runs = append(runs, r)
		}
		last := &runs[len(runs)-1]
		last.pts = append(last.pts, s.Point())
	}
	return runs
}
