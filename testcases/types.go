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

// Package testcases contains drawings used to test and benchmark the laser
// rasterizer, and to generate reference traces.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Scene is a single drawing, given in the user space of a logical drawing
// area.
type Scene struct {
	Name   string  // lowercase a-z, 0-9 and _ only
	Width  float64 // width of the logical drawing area
	Height float64 // height of the logical drawing area

	Path  path.Path     // the outline to draw
	Color uint8         // beam color, 1-255
	CTM   matrix.Matrix // applied to Path (zero-value means no transform)

	Dash      []float64 // dash pattern in user space (nil for solid)
	DashPhase float64
}

// Outline returns the path of the scene, with the CTM applied.
func (s Scene) Outline() path.Path {
	if s.CTM == (matrix.Matrix{}) || s.CTM == matrix.Identity {
		return s.Path
	}
	return transform(s.Path, s.CTM)
}

// transform applies m to all points of p.
func transform(p path.Path, m matrix.Matrix) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for cmd, pts := range p {
			out := buf[:len(pts)]
			for i, q := range pts {
				out[i] = vec.Vec2{
					X: m[0]*q.X + m[2]*q.Y + m[4],
					Y: m[1]*q.X + m[3]*q.Y + m[5],
				}
			}
			if !yield(cmd, out) {
				return
			}
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

type yieldFunc = func(path.Command, []vec.Vec2) bool

func moveTo(yield yieldFunc, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)})
}

func lineTo(yield yieldFunc, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{pt(x, y)})
}

func closePath(yield yieldFunc) bool {
	return yield(path.CmdClose, nil)
}
