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

package laser

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// scaleMatrix returns the transformation which maps a logical drawing area
// of the given size onto the device square [0, MaxCoord]².  The aspect ratio
// is preserved; the larger of the two sides fills the device range.
func scaleMatrix(width, height float64) matrix.Matrix {
	s := float64(MaxCoord) / max(width, height)
	return matrix.Matrix{s, 0, 0, s, 0, 0}
}

// apply transforms a point from user space to device space.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// applyLinear applies only the 2×2 linear part of m to a vector.
// Used for tolerance checks where translation is irrelevant.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// invert returns the inverse of the affine transformation m.
// The second return value is false if m is singular.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return matrix.Matrix{
		a, b,
		c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// distance returns the Euclidean distance between a and b.
func distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// equalWithin reports whether a and b differ by at most tol along each axis.
func equalWithin(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
