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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []Scene{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "cubic_s",
		Path:   cubicCurve(10, 32, 30, 0, 34, 64, 54, 32),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 2),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 12),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "arc_three_quarters",
		Path:   arc(32, 32, 20, 3),
		Width:  64,
		Height: 64,
		Color:  255,
	},
}

// quadraticCurve builds an open path with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		yield(path.CmdQuadTo, []vec.Vec2{pt(cx, cy), pt(x2, y2)})
	}
}

// cubicCurve builds an open path with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		yield(path.CmdCubeTo, []vec.Vec2{pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)})
	}
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, cx+rx, cy) {
			return
		}
		for q := range 4 {
			if !yield(path.CmdCubeTo, quadrant(cx, cy, rx, ry, q)) {
				return
			}
		}
		closePath(yield)
	}
}

// arc builds an open arc of n quarter circles, counter-clockwise from the
// rightmost point.
func arc(cx, cy, r float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, cx+r, cy) {
			return
		}
		for q := range min(n, 4) {
			if !yield(path.CmdCubeTo, quadrant(cx, cy, r, r, q)) {
				return
			}
		}
	}
}

// quadrant returns the control points and end point of quarter q (0-3) of
// an ellipse, counter-clockwise in a y-up coordinate system.
func quadrant(cx, cy, rx, ry float64, q int) []vec.Vec2 {
	kx := rx * kappa
	ky := ry * kappa
	switch q {
	case 0:
		return []vec.Vec2{pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)}
	case 1:
		return []vec.Vec2{pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)}
	case 2:
		return []vec.Vec2{pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)}
	default:
		return []vec.Vec2{pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)}
	}
}
