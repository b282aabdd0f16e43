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
)

// largeCases contain many samples per frame.  Some of them exceed the
// 20000 samples a frame can hold at 50 frames per second with the default
// sample rate.
var largeCases = []Scene{
	{
		Name:   "full_range_rectangle",
		Path:   rectangle(0, 0, 512, 512),
		Width:  512,
		Height: 512,
		Color:  255,
	},
	{
		Name:   "grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4).Iter(),
		Width:  512,
		Height: 512,
		Color:  255,
	},
	{
		Name:   "dense_grid",
		Path:   rectangleGrid(32, 32, 512, 512, 2).Iter(),
		Width:  512,
		Height: 512,
		Color:  255,
	},
	{
		Name:   "concentric_circles",
		Path:   concentricCircles(256, 256, 20, 240, 12),
		Width:  512,
		Height: 512,
		Color:  255,
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}

	return p
}

// concentricCircles builds n circles with radii evenly spaced between rMin
// and rMax.
func concentricCircles(cx, cy, rMin, rMax float64, n int) path.Path {
	circles := make([]path.Path, n)
	for i := range n {
		r := rMin
		if n > 1 {
			r += (rMax - rMin) * float64(i) / float64(n-1)
		}
		circles[i] = circle(cx, cy, r)
	}
	return concat(circles...)
}
