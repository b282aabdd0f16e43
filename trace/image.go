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

package trace

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/laser"
)

// Image renders the lit part of the beam path into a size×size grayscale
// image.  Lit strokes are drawn white on black, with the given line width
// in pixels.  Dark moves are not drawn.
func Image(samples []laser.Sample, size int, lineWidth float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	scale := float64(size) / laser.MaxCoord
	half := float32(lineWidth / 2)

	toPixel := func(p vec.Vec2) (float32, float32) {
		return float32(p.X * scale), float32(float64(size) - p.Y*scale)
	}

	z := vector.NewRasterizer(size, size)
	for _, r := range splitRuns(samples) {
		if !r.lit {
			continue
		}
		for i, p := range r.pts {
			x, y := toPixel(p)
			if i == 0 || p == r.pts[i-1] {
				addDot(z, x, y, half)
				continue
			}
			px, py := toPixel(r.pts[i-1])
			addSegment(z, px, py, x, y, half)
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(color.Gray{Y: 0xFF}), image.Point{})
	return img
}

// WritePNG renders the beam path as by [Image] and writes it in PNG format.
func WritePNG(w io.Writer, samples []laser.Sample, size int, lineWidth float64) error {
	return png.Encode(w, Image(samples, size, lineWidth))
}

// addSegment adds a rectangle of half-width h around the segment from
// (ax, ay) to (bx, by).  All rectangles and dots have the same orientation,
// so that overlapping shapes do not cancel.
func addSegment(z *vector.Rasterizer, ax, ay, bx, by, h float32) {
	d := vec.Vec2{X: float64(bx - ax), Y: float64(by - ay)}
	l := d.Length()
	if l == 0 {
		addDot(z, ax, ay, h)
		return
	}
	nx := float32(-d.Y/l) * h
	ny := float32(d.X/l) * h

	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

// addDot adds a square of half-width h centred at (x, y).
func addDot(z *vector.Rasterizer, x, y, h float32) {
	z.MoveTo(x-h, y+h)
	z.LineTo(x+h, y+h)
	z.LineTo(x+h, y-h)
	z.LineTo(x-h, y-h)
	z.ClosePath()
}
