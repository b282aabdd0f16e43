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

var figureCases = []Scene{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "spiral",
		Path:   spiralPath(32, 32, 3, 28, 4),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "zigzag",
		Path:   zigzagPath(5, 32, 59, 20),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "lissajous",
		Path:   lissajous(32, 32, 28, 3, 2, 256),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "house",
		Path:   house(12, 8, 40),
		Width:  64,
		Height: 64,
		Color:  200,
	},
}

// mixedLinesCurves builds a closed path combining line segments and Bezier
// curves.
func mixedLinesCurves() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, 10, 50) ||
			!lineTo(yield, 20, 30) ||
			!yield(path.CmdQuadTo, []vec.Vec2{pt(32, 10), pt(44, 30)}) ||
			!lineTo(yield, 54, 50) ||
			!yield(path.CmdCubeTo, []vec.Vec2{pt(48, 60), pt(16, 60), pt(10, 50)}) {
			return
		}
		closePath(yield)
	}
}

// spiralPath builds an Archimedean spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !moveTo(yield, cx+rMin, cy) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			if !lineTo(yield, cx+r*math.Cos(angle), cy+r*math.Sin(angle)) {
				return
			}
		}
	}
}

// zigzagPath builds a zigzag line with five segments.
func zigzagPath(x1, cy, x2, amplitude float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		segments := 5
		segWidth := (x2 - x1) / float64(segments)

		if !moveTo(yield, x1, cy) {
			return
		}
		for i := 1; i <= segments; i++ {
			y := cy + amplitude
			if i%2 == 1 {
				y = cy - amplitude
			}
			if !lineTo(yield, x1+float64(i)*segWidth, y) {
				return
			}
		}
	}
}

// lissajous builds a closed Lissajous figure with frequencies a and b,
// approximated by n line segments.
func lissajous(cx, cy, r float64, a, b float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, cx, cy) {
			return
		}
		for i := 1; i < n; i++ {
			t := 2 * math.Pi * float64(i) / float64(n)
			if !lineTo(yield, cx+r*math.Sin(a*t), cy+r*math.Sin(b*t)) {
				return
			}
		}
		closePath(yield)
	}
}

// house builds the "house of Nikolaus", which can be drawn in a single
// stroke.
func house(x, y, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := []vec.Vec2{
			pt(x+size, y),
			pt(x, y+size),
			pt(x+size, y+size),
			pt(x+size/2, y+1.5*size),
			pt(x, y+size),
			pt(x, y),
			pt(x+size, y+size),
			pt(x+size, y),
		}
		if !moveTo(yield, x, y) {
			return
		}
		for _, p := range pts {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}
