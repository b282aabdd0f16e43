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

var lineCases = []Scene{
	{
		Name:   "horizontal",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "vertical",
		Path:   verticalLine(32, 10, 54),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "diagonal",
		Path:   corner(5, 5, 59, 59, 59, 59),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "dim",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Color:  64,
	},
	{
		Name:   "corner_90",
		Path:   corner(10, 54, 32, 10, 54, 54),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "point",
		Path:   dot(32, 32),
		Width:  64,
		Height: 64,
		Color:  255,
	},
}

// horizontalLine builds a single horizontal line.
func horizontalLine(x1, y, x2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y) {
			return
		}
		lineTo(yield, x2, y)
	}
}

// verticalLine builds a single vertical line.
func verticalLine(x, y1, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x, y1) {
			return
		}
		lineTo(yield, x, y2)
	}
}

// corner builds two connected line segments.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, x2, y2) {
			return
		}
		lineTo(yield, x3, y3)
	}
}

// dot builds a subpath without extent, which is drawn as a single point.
func dot(x, y float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x, y) {
			return
		}
		closePath(yield)
	}
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, x2, y2) {
			return
		}
		if !lineTo(yield, x3, y3) {
			return
		}
		closePath(yield)
	}
}

// fivePointStar builds a five-pointed star, drawn in one stroke.
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		closePath(yield)
	}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, x2, y1) {
			return
		}
		if !lineTo(yield, x2, y2) {
			return
		}
		if !lineTo(yield, x1, y2) {
			return
		}
		closePath(yield)
	}
}
