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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var dashCases = []Scene{
	{
		Name:   "simple",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Color:  255,
		Dash:   []float64{10, 5},
	},
	{
		Name:   "single_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Color:  255,
		Dash:   []float64{10},
	},
	// [5, 3, 8] becomes [5, 3, 8, 5, 3, 8]
	{
		Name:   "three_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Color:  255,
		Dash:   []float64{5, 3, 8},
	},
	{
		Name:      "phase",
		Path:      horizontalLine(5, 32, 59),
		Width:     64,
		Height:    64,
		Color:     255,
		Dash:      []float64{10, 5},
		DashPhase: 7,
	},
	{
		Name:      "negative_phase",
		Path:      horizontalLine(5, 32, 59),
		Width:     64,
		Height:    64,
		Color:     255,
		Dash:      []float64{10, 5},
		DashPhase: -3,
	},
	{
		Name:   "corner",
		Path:   cornerAngle(10, 40, 32, 40, 60),
		Width:  64,
		Height: 64,
		Color:  255,
		Dash:   []float64{6, 4},
	},
	{
		Name:   "zigzag",
		Path:   zigzag(5, 20, 18, 44, 32, 20, 46, 44, 59, 20),
		Width:  64,
		Height: 64,
		Color:  255,
		Dash:   []float64{8, 3},
	},
	// The last dash runs into the first one and is drawn as one stroke.
	{
		Name:      "closed_join",
		Path:      rectangle(12, 12, 52, 52),
		Width:     64,
		Height:    64,
		Color:     255,
		Dash:      []float64{30, 10},
		DashPhase: 5,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Color:  255,
		Dash:   []float64{4, 4},
	},
	{
		Name:   "short_dashes",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Color:  255,
		Dash:   []float64{1, 5},
	},
}

// cornerAngle builds a corner path with a specific angle.
// The first segment goes from (x1, y1) to (cx, cy), the second segment
// extends from (cx, cy) at the given angle (in degrees) from horizontal.
func cornerAngle(x1, y1, cx, cy float64, angleDeg float64) path.Path {
	angleRad := angleDeg * math.Pi / 180
	length := 20.0
	x2 := cx + length*math.Cos(angleRad)
	y2 := cy - length*math.Sin(angleRad)
	return corner(x1, y1, cx, cy, x2, y2)
}

// zigzag builds a zigzag path with multiple corners.
func zigzag(x1, y1, x2, y2, x3, y3, x4, y4, x5, y5 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		for _, p := range []vec.Vec2{pt(x2, y2), pt(x3, y3), pt(x4, y4), pt(x5, y5)} {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}
