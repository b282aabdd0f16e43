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

// jumpCases consist of several subpaths, so that the beam has to be blanked
// and moved between them.
var jumpCases = []Scene{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "overlapping_rectangles",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "ring",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "many_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Color:  255,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Color:  255,
	},
	// The beam is left on when the next subpath starts where the previous
	// one ended.
	{
		Name:   "touching",
		Path:   touchingLines(10, 32, 32, 54),
		Width:  64,
		Height: 64,
		Color:  255,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range []vec.Vec2{pt(cx1, cy1), pt(cx2, cy2)} {
			if !moveTo(yield, c.X, c.Y-size) ||
				!lineTo(yield, c.X+size, c.Y+size) ||
				!lineTo(yield, c.X-size, c.Y+size) ||
				!closePath(yield) {
				return
			}
		}
	}
}

// overlappingRectangles builds two overlapping rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	return concat(rectangle(x1a, y1a, x2a, y2a), rectangle(x1b, y1b, x2b, y2b))
}

// ringShape builds two concentric squares.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	return concat(
		rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize),
		rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize),
	)
}

// multipleRings builds three rings, arranged in a triangle.
func multipleRings(cx, cy float64) path.Path {
	return concat(
		ringShape(cx-30, cy-30, 20, 10),
		ringShape(cx+30, cy-30, 20, 10),
		ringShape(cx, cy+30, 20, 10),
	)
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		size := 5.0
		spacing := 14.0

		for row := range rows {
			for col := range cols {
				cx := 10.0 + float64(col)*spacing
				cy := 10.0 + float64(row)*spacing

				if !moveTo(yield, cx, cy-size) ||
					!lineTo(yield, cx+size, cy+size) ||
					!lineTo(yield, cx-size, cy+size) ||
					!closePath(yield) {
					return
				}
			}
		}
	}
}

// touchingLines builds two subpaths, where the second one starts at the end
// point of the first.
func touchingLines(x1, y1, x2, y2 float64) path.Path {
	return concat(
		horizontalLine(x1, y1, x2),
		verticalLine(x2, y1, y2),
	)
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}
