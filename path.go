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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the minimum length for a flattened segment.
// Shorter segments are skipped.
const zeroLengthThreshold = 1e-10

// segment is a line segment in user space.
type segment struct {
	A, B vec.Vec2
}

func (s segment) length() float64 {
	return s.B.Sub(s.A).Length()
}

// RenderPath draws the outline of p.  Curves are approximated by line
// segments using Flatness, and Dash is applied if set.  Subpaths which
// consist of a single point are drawn as dots.
func (r *Rasterizer) RenderPath(p path.Path, color uint8) {
	r.flattenPath(p)

	for _, pt := range r.dots {
		r.RenderLine(pt, pt, color)
	}

	if len(r.Dash) > 0 {
		r.applyDashPattern()
		for i := range r.dashedSegsOffsets {
			for _, seg := range r.getDashedSegments(i) {
				r.RenderLine(seg.A, seg.B, color)
			}
		}
		return
	}

	for i := range r.segsOffsets {
		for _, seg := range r.getSubpathSegments(i) {
			r.RenderLine(seg.A, seg.B, color)
		}
	}
}

// getSubpathSegments returns the segments for subpath i as a slice into segs.
func (r *Rasterizer) getSubpathSegments(i int) []segment {
	start := r.segsOffsets[i]
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[start:end]
}

// flattenPath walks the path, flattens curves, and stores the result in
//   - r.segs: all segments from all subpaths, contiguous
//   - r.segsOffsets: start index of each subpath in segs
//   - r.subpathClosed: whether each subpath is closed
//   - r.dots: subpaths which have drawing commands but no extent
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	startIdx := 0
	inSubpath := false
	sawDrawing := false

	endSubpath := func(closed bool) {
		switch {
		case len(r.segs) > startIdx:
			r.segsOffsets = append(r.segsOffsets, startIdx)
			r.subpathClosed = append(r.subpathClosed, closed)
		case sawDrawing:
			r.dots = append(r.dots, start)
		}
		startIdx = len(r.segs)
		inSubpath = false
		sawDrawing = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				endSubpath(false)
			}
			current = pts[0]
			start = current
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			r.addSegment(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			r.flattenQuadratic(current, pts[0], pts[1], r.addSegment)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addSegment)
			current = pts[2]

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			if current != start {
				r.addSegment(current, start)
			}
			current = start
			endSubpath(true)
		}
	}
	if inSubpath {
		endSubpath(false)
	}
}

// addSegment adds a line segment to the flattening buffer.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	if b.Sub(a).Length() < zeroLengthThreshold {
		return
	}
	r.segs = append(r.segs, segment{A: a, B: b})
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line
// segment.  p0 is the start point, p1 the control point and p2 the end point.
// All points are in user space; the tolerance is checked in device space.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := applyLinear(r.CTM, e).Length()

	flatness := r.flatness()
	n := 1
	if errDev > flatness {
		n = int(math.Ceil(math.Sqrt(errDev / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is the start point, p1 and p2 are control points, p3 is the end point.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(applyLinear(r.CTM, d1).Length(), applyLinear(r.CTM, d2).Length())
	n := 1
	if m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * r.flatness())); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// flatness returns the flattening tolerance, falling back to the default
// for invalid settings.
func (r *Rasterizer) flatness() float64 {
	if r.Flatness > 0 {
		return r.Flatness
	}
	return DefaultFlatness
}
